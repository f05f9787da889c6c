// Package whatsapp builds wa.me deep links with prefilled messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	baseURL     = "https://wa.me/"
	countryCode = "55"
)

// Digits remove tudo que não for dígito.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone devolve o número só com dígitos e com DDI 55.
func NormalizePhone(phone string) string {
	d := Digits(phone)
	if d == "" || strings.HasPrefix(d, countryCode) {
		return d
	}
	return countryCode + d
}

// Link monta https://wa.me/<numero>?text=<mensagem>.
func Link(phone, text string) string {
	u := baseURL + NormalizePhone(phone)
	if text == "" {
		return u
	}
	// wa.me espera espaços como %20, não '+'
	return u + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

type Enrollment struct {
	Name    string
	Email   string
	Phone   string
	Course  string
	Message string
}

// EnrollmentMessage é o texto enviado ao estúdio quando alguém se inscreve pelo site.
func EnrollmentMessage(e Enrollment) string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "Sem mensagem"
	}

	return fmt.Sprintf(
		"*Nova Inscrição pelo Site*\n\n*Nome:* %s\n*Email:* %s\n*WhatsApp:* %s\n*Curso de Interesse:* %s\n*Mensagem:* %s",
		e.Name, e.Email, e.Phone, e.Course, msg,
	)
}

func ContactMessage(studioName string) string {
	return fmt.Sprintf("Olá! Gostaria de saber mais sobre os cursos do %s.", studioName)
}

// AppointmentMessage é o rascunho que o admin envia ao cliente sobre um agendamento.
func AppointmentMessage(clientName, serviceName string, date time.Time, hm string) string {
	return fmt.Sprintf(
		"Olá %s! Sobre seu agendamento de %s no dia %s às %s...",
		clientName, serviceName, date.Format("02/01/2006"), hm,
	)
}
