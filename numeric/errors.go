package numeric

import "github.com/pkg/errors"

func errBitVectorRequired(translatorName string) error {
	return errors.Errorf("numeric: %s translator requires a bit-vector value", translatorName)
}
