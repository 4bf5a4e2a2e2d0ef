package dto

// LoginReq represents the form body for the POST /login endpoint.
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
