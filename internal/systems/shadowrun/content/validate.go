package content

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
)

var recordValidate = validator.New(validator.WithRequiredStructEnabled())

// validateRecord checks the struct tags on one decoded item and reports the
// first failing field as an invalid payload.
func validateRecord(file string, index int, item any) error {
	err := recordValidate.Struct(item)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Wrap(apperrors.CodeContentInvalidPayload, fmt.Sprintf("%s: item %d", file, index), err)
	}
	fe := fieldErrs[0]
	return apperrors.WithMetadata(apperrors.CodeContentInvalidPayload,
		fmt.Sprintf("%s: item %d: field %s failed %q (value %v)", file, index, fe.Namespace(), fe.Tag(), fe.Value()),
		map[string]string{"Path": file, "Field": fe.Field(), "Rule": fe.Tag()})
}
