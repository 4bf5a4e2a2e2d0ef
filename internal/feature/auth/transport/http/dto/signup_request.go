// Package dto defines the form bindings for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the form body for the POST /signup endpoint.
// Address and location are accepted as-is, without validation.
type SignupReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Address  string `form:"address"`
	Location string `form:"location"`
}
