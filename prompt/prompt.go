package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// IDLength is the number of characters of every course identifier.
const IDLength = 7

// Hints printed for rejected input.
const (
	HintLength    = "Invalid input. Please ensure input looks similar to 'CSCI100'."
	HintOneWord   = "Invalid input. Please input only one word."
	HintMalformed = "Invalid input. Please ensure input is one word string."
)

var idValidate *validator.Validate

func init() {
	idValidate = validator.New()
	if err := idValidate.RegisterValidation("nospace", validateNoSpace); err != nil {
		panic(fmt.Sprintf("prompt: cannot register course ID validation: %v", err))
	}
}

// validateNoSpace is false for strings containing white space of any kind.
func validateNoSpace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// ValidateID checks a single token against the course identifier rules.
// The returned error is nil or carries the hint to show to the operator.
func ValidateID(token string) error {
	err := idValidate.Var(token, fmt.Sprintf("required,len=%d,nospace", IDLength))
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.New(HintMalformed)
	}
	if verrs[0].Tag() == "nospace" {
		return errors.New(HintOneWord)
	}
	return errors.New(HintLength)
}

// NewScanner creates a token scanner for operator input. Menu choices and
// course identifiers are read from the same scanner, the way a terminal
// session reads whitespace-separated words.
func NewScanner(in io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return sc
}

// ReadCourseID writes question to out and reads tokens from sc until one of
// them is a valid course identifier. Rejected tokens are answered with a hint
// and the question is repeated. The accepted identifier is returned in upper
// case.
//
// If input is exhausted before a valid identifier has been read, ReadCourseID
// returns io.EOF (or the scanner's error).
func ReadCourseID(sc *bufio.Scanner, out io.Writer, question string) (string, error) {
	for {
		fmt.Fprint(out, question)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		token := sc.Text()
		if err := ValidateID(token); err != nil {
			tracer().Debugf("prompt: rejected %q: %v", token, err)
			fmt.Fprintln(out, err.Error())
			continue
		}
		return strings.ToUpper(token), nil
	}
}
