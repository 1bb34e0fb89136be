package request

type StartVerificationRequest struct {
	Token string `json:"token" binding:"required,max=200"`
}

type CompleteClaimRequest struct {
	Token    string `json:"token" binding:"required,max=200"`
	Code     string `json:"code" binding:"required,len=6"`
	Email    string `json:"email" binding:"required,email,max=320"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type OptOutRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}
