package translate

import "github.com/minicc-lang/minicc/pkg/diag"

func (t *Translator) semanticError(line int, format string, args ...any) error {
	err := diag.NewSemanticError(line, format, args...)
	t.fail(err)
	return err
}

func (t *Translator) typeError(line int, format string, args ...any) error {
	err := diag.NewTypeError(line, format, args...)
	t.fail(err)
	return err
}
