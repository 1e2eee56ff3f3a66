// FILE: pkg/b2b/dialogue.go
// PURPOSE: Five-step lead collection, entered on B2B keywords and left after
// the contact step whether or not the lead could be dispatched.

package b2b

import (
	"context"
	"fmt"
	"strings"
	"time"

	"anilab-chat-be/pkg/taxonomy"
	"anilab-chat-be/pkg/textnorm"

	"github.com/google/uuid"
)

type Result struct {
	Reply string
	// Dispatched is true when a notifier call was attempted this turn.
	Dispatched  bool
	DispatchErr error
	Lead        *Lead
}

type Dialogue struct {
	tax      *taxonomy.Taxonomy
	notifier Notifier
	contact  string
	now      func() time.Time
}

// NewDialogue builds the dialogue. contact is the address shown to the
// user when automatic dispatch fails.
func NewDialogue(tax *taxonomy.Taxonomy, notifier Notifier, contact string) *Dialogue {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Dialogue{
		tax:      tax,
		notifier: notifier,
		contact:  contact,
		now:      time.Now,
	}
}

// Triggered reports whether a normalized message asks for B2B cooperation.
func (d *Dialogue) Triggered(norm string) bool {
	return textnorm.ContainsAny(norm, d.tax.B2BTriggers)
}

// Handle advances the dialogue by one user message. history must already
// contain the message being handled.
func (d *Dialogue) Handle(ctx context.Context, st *State, message string, history []string) Result {
	answer := strings.TrimSpace(message)

	if !st.Active || st.Step < StepBusinessType || st.Step > StepContact {
		st.Reset()
		st.Active = true
		st.Step = StepBusinessType
		return Result{Reply: QuestionBusinessType}
	}

	switch st.Step {
	case StepBusinessType:
		st.Lead.Type = d.businessType(answer)
		st.Step = StepCountry
		return Result{Reply: QuestionCountry}

	case StepCountry:
		st.Lead.Country = answer
		st.Step = StepProducts
		return Result{Reply: QuestionProducts}

	case StepProducts:
		st.Lead.Products = answer
		st.Step = StepVolume
		return Result{Reply: QuestionVolume}

	case StepVolume:
		st.Lead.Volume = answer
		st.Step = StepContact
		return Result{Reply: QuestionContact}
	}

	return d.finish(ctx, st, answer, history)
}

func (d *Dialogue) finish(ctx context.Context, st *State, answer string, history []string) Result {
	contact, ok := ParseContact(answer)
	if !ok {
		return Result{Reply: AskContactAgain}
	}

	lead := st.Lead
	lead.ID = uuid.NewString()
	lead.Email = contact.Email
	lead.Web = contact.Web
	lead.Name = contact.Name
	lead.Company = contact.Company
	lead.CreatedAt = d.now()

	var err error
	if d.notifier == nil {
		err = ErrNoNotifier
	} else {
		err = d.notifier.NotifyLead(ctx, lead, Excerpt(history, ExcerptSize))
	}

	st.Reset()

	res := Result{Dispatched: true, DispatchErr: err, Lead: &lead}
	if err != nil {
		res.Reply = fmt.Sprintf(replyNotSent, d.contact)
	} else {
		res.Reply = fmt.Sprintf(replySent, lead.Email)
	}
	return res
}

func (d *Dialogue) businessType(answer string) string {
	norm := textnorm.Normalize(answer)
	for _, bt := range d.tax.BusinessTypes {
		if textnorm.ContainsAny(norm, bt.Keywords) {
			return bt.Label
		}
	}
	return answer
}
