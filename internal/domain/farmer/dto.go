package farmer

type RegisterInput struct {
	Name     string `form:"name" binding:"required,max=100" example:"Asha"`
	Phone    string `form:"phone" binding:"required,max=20" example:"9876543210"`
	Password string `form:"password" binding:"required" example:"secret123"`
}

type LoginInput struct {
	Phone    string `form:"phone" binding:"required"`
	Password string `form:"password" binding:"required"`
}
