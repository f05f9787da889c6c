package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

var (
	validate = validator.New()

	nameRe  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	phoneRe = regexp.MustCompile(`^\(?\d{2}\)?\s?9?\d{4}-?\d{4}$`)
)

type ClientData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Client valida e normaliza os dados do cliente. Todos os campos inválidos
// voltam juntos em um httperr.ValidationError.
func Client(in ClientData) (ClientData, error) {
	out := ClientData{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Phone: strings.TrimSpace(in.Phone),
	}

	fields := map[string]string{}

	switch n := utf8.RuneCountInString(out.Name); {
	case n < 2:
		fields["name"] = "Nome deve ter pelo menos 2 caracteres"
	case n > 100:
		fields["name"] = "Nome deve ter no máximo 100 caracteres"
	case !nameRe.MatchString(out.Name):
		fields["name"] = "Nome deve conter apenas letras"
	}

	if len(out.Email) > 255 {
		fields["email"] = "E-mail deve ter no máximo 255 caracteres"
	} else if err := validate.Var(out.Email, "required,email"); err != nil {
		fields["email"] = "E-mail inválido"
	}

	if !phoneRe.MatchString(out.Phone) {
		fields["phone"] = "Telefone inválido. Use o formato (XX) 9XXXX-XXXX"
	}

	if len(fields) > 0 {
		return out, httperr.ValidationError{Fields: fields}
	}
	return out, nil
}
