package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

var businessMessages = map[string]string{
	"service_not_found":     "Serviço não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"course_not_found":      "Curso não encontrado.",
	"combo_not_found":       "Combo não encontrado.",
	"session_not_found":     "Sessão de agendamento expirada. Comece novamente.",
	"slot_taken":            "Este horário acabou de ser reservado. Escolha outro.",
	"slot_unavailable":      "Horário indisponível para esta data.",
	"date_unavailable":      "Não há atendimento nesta data.",
	"invalid_state":         "O agendamento não pode mudar para este status.",
	"invalid_status":        "Status inválido.",
	"invalid_time":          "Horário inválido.",
	"invalid_date":          "Data inválida.",
	"invalid_year":          "Ano inválido.",
	"invalid_month":         "Mês inválido.",
	"invalid_step":          "Etapa do agendamento inválida.",
	"session_submitted":     "Este agendamento já foi enviado.",
}

// writeError traduz erros de validação e de negócio para HTTP. Qualquer
// outro erro vira 500 com mensagem genérica.
func writeError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Fields(c, ve.Error(), "Verifique os dados informados.", ve.Fields)
		return
	}

	code := httperr.Code(err)
	if code == "" {
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente mais tarde.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Requisição inválida."
	}

	switch {
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, msg)
	case code == "slot_taken" || code == "invalid_state" || code == "session_submitted":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

func badRequest(c *gin.Context) {
	httperr.Write(c, http.StatusBadRequest, "invalid_request", "Dados inválidos.")
}
