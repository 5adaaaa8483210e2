package interfaces

import (
	"context"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type OTPRepository interface {
	Upsert(ctx context.Context, email, code string, expireAt time.Time) error
	FindByEmailAndCode(ctx context.Context, email, code string) (*model.OTP, error)
	DeleteByEmail(ctx context.Context, email string) error
}
