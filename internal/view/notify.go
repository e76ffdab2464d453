package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/vault93/storefront/internal/notify"
)

// ToastStack renders the toast container. Dismissing toasts keep
// their exit class until the center removes them.
func ToastStack(toasts []notify.Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="toast-stack" class="toast-stack">
`); err != nil {
			return err
		}
		for _, t := range toasts {
			class := fmt.Sprintf("toast toast-%s", t.Level)
			if t.State == notify.StateDismissing {
				class += " toast-exit"
			}
			if _, err := fmt.Fprintf(w, `<div id="toast-%s" class="%s" data-on-click="@delete('/ui/toasts/%s')">%s</div>
`, esc(t.ID), class, esc(t.ID), esc(t.Message)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// PromptOverlay renders the blocking prompt, or an empty container
// when none is showing. Clicking the backdrop cancels.
func PromptOverlay(p *notify.Prompt) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p == nil {
			_, err := io.WriteString(w, `<div id="prompt-overlay"></div>`)
			return err
		}
		class := "prompt-backdrop"
		if p.State == notify.StateDismissing {
			class += " prompt-exit"
		}
		confirmAction := fmt.Sprintf("@post('%s')", p.ConfirmPath)
		if p.ConfirmPath == "" {
			confirmAction = fmt.Sprintf("@delete('/ui/prompts/%s')", p.ID)
		}
		_, err := fmt.Fprintf(w, `<div id="prompt-overlay">
<div class="%s" data-on-click="@delete('/ui/prompts/%s')">
<div class="prompt" data-on-click__stop>
<span class="prompt-icon">%s</span>
<h3>%s</h3>
<p>%s</p>
<div class="prompt-actions">
<button class="prompt-confirm" data-on-click="%s">%s</button>
<button class="prompt-cancel" data-on-click="@delete('/ui/prompts/%s')">%s</button>
</div>
</div>
</div>
</div>`, class, esc(p.ID), esc(p.Icon), esc(p.Title), esc(p.Message),
			esc(confirmAction), esc(p.ConfirmLabel), esc(p.ID), esc(p.CancelLabel))
		return err
	})
}
