package service

import "context"

type Signup struct {
	repository UserRepository
	hasher     Hasher
}

type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string) (id int64, err error)
}

type Hasher interface {
	Hash(string) (string, error)
}

func NewSignup(r UserRepository, h Hasher) *Signup {
	return &Signup{
		repository: r,
		hasher:     h,
	}
}

// Register создает нового пользователя в UserRepository, сохраняя
// хэш пароля вместо самого пароля, и возвращает его id.
func (s *Signup) Register(ctx context.Context, login, password string) (int64, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	return s.repository.Create(ctx, login, passwordHash)
}
