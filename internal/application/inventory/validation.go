package inventory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar el nombre JSON del campo (min_stock en lugar de MinStock).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check valida las etiquetas `validate` del DTO y convierte el primer fallo en ValidationError.
func (e *Engine) check(in any) error {
	err := e.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.NewValidationError(verrs[0].Field(), verrs[0].Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
