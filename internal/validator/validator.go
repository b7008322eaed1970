package validator

import (
	"context"
	"reflect"

	"github.com/asmolkov/taskhub/internal/entity"
	v10validator "github.com/go-playground/validator/v10"
)

type Validator struct {
	engine Engine
}

type Engine interface {
	StructCtx(ctx context.Context, s any) error
	VarCtx(ctx context.Context, field any, tag string) error
}

func New(e Engine) *Validator {
	return &Validator{engine: e}
}

func (v *Validator) Struct(ctx context.Context, s any) error {
	return v.engine.StructCtx(ctx, s)
}

func (v *Validator) Var(ctx context.Context, field any, tag string) error {
	return v.engine.VarCtx(ctx, field, tag)
}

var difficultyGroups = map[string]struct{}{
	entity.DifficultyElementary:   {},
	entity.DifficultyIntermediate: {},
	entity.DifficultyExpert:       {},
}

// Difficulty проверяет, что значение поля является известной группой
// сложности задачи.
func Difficulty(fl v10validator.FieldLevel) bool {
	val := fl.Field()
	if val.Kind() != reflect.String {
		return false
	}

	_, ok := difficultyGroups[val.String()]

	return ok
}
