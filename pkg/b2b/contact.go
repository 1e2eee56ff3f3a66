package b2b

import (
	"regexp"
	"strings"
	"unicode"

	"anilab-chat-be/pkg/textnorm"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	webPattern   = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+|@[a-z0-9_.]{2,})`)
)

// Words people wrap around their contact details; never part of a name.
var contactFillers = map[string]bool{
	"email": true, "e-mail": true, "mail": true, "kontakt": true, "kontaktny": true,
	"moj": true, "moje": true, "je": true, "meno": true, "firma": true, "web": true,
	"instagram": true, "ig": true, "volam": true, "sa": true, "som": true, "a": true,
	"my": true, "is": true, "name": true, "company": true, "and": true, "here": true,
}

const (
	maxNameLen   = 60
	maxNameWords = 5
)

// Contact is what can be pulled out of the free-text contact answer.
type Contact struct {
	Email   string
	Web     string
	Name    string
	Company string
}

// ParseContact extracts an email (required), a URL or @handle, and a
// best-effort "Name, Company" from whatever text is left.
func ParseContact(text string) (Contact, bool) {
	email := emailPattern.FindString(text)
	if email == "" {
		return Contact{}, false
	}

	c := Contact{Email: email}
	rest := strings.Replace(text, email, " ", 1)

	if web := webPattern.FindString(rest); web != "" {
		rest = strings.Replace(rest, web, " ", 1)
		c.Web = strings.TrimRight(web, ".,;:)!?")
	}

	c.Name, c.Company = parseName(rest)
	return c, true
}

func parseName(rest string) (string, string) {
	var kept []string
	for _, tok := range strings.Fields(rest) {
		bare := textnorm.Normalize(strings.Trim(tok, ",;:.-"))
		if bare == "" || contactFillers[bare] {
			continue
		}
		kept = append(kept, tok)
	}

	if len(kept) == 0 || len(kept) > maxNameWords {
		return "", ""
	}

	joined := strings.Trim(strings.Join(kept, " "), " ,;:-")
	if joined == "" || len(joined) > maxNameLen || strings.IndexFunc(joined, unicode.IsDigit) >= 0 {
		return "", ""
	}

	name, company, _ := strings.Cut(joined, ",")
	return strings.TrimSpace(name), strings.Trim(strings.TrimSpace(company), ",")
}
