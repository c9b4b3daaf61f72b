package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/jwt"
)

var (
	ErrEmptySubject = errors.New("subject 不能为空")
)

// AuthService 令牌签发接口
//
// 系统不保存凭据，令牌由运维通过 `server token` 子命令离线签发。
type AuthService interface {
	IssueToken(subject, role string) (*dto.TokenResponse, error)
}

type authService struct {
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) IssueToken(subject, role string) (*dto.TokenResponse, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}

	token, expiresAt, err := s.jwtMgr.GenerateToken(subject, role)
	if err != nil {
		if !errors.Is(err, jwt.ErrUnknownRole) {
			s.logger.Error("签发 Token 失败", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Token 已签发",
		zap.String("subject", subject),
		zap.String("role", role),
		zap.Time("expires_at", expiresAt),
	)

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Subject:     subject,
		Role:        role,
		ExpiresAt:   formatTime(expiresAt),
	}, nil
}
