package dto

// TokenResponse 签发的访问令牌
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Subject     string `json:"subject"`
	Role        string `json:"role"`
	ExpiresAt   string `json:"expires_at"`
}

// ExportFile 导出文件
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
