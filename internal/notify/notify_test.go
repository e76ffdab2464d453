package notify_test

import (
	"sync"
	"testing"
	"time"

	"github.com/vault93/storefront/internal/notify"
)

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestCenter_ToastLifecycle(t *testing.T) {
	c := notify.NewCenterWithTimings(30*time.Millisecond, time.Hour, 10*time.Millisecond)

	id := c.ShowToast("Added to cart", notify.LevelSuccess)

	toasts := c.Toasts()
	if len(toasts) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(toasts))
	}
	if toasts[0].ID != id || toasts[0].State != notify.StateVisible {
		t.Fatalf("expected visible toast %s, got %+v", id, toasts[0])
	}

	// Auto-dismiss moves it through dismissing to removed.
	waitFor(t, func() bool { return len(c.Toasts()) == 0 })
}

func TestCenter_ToastsStackInOrder(t *testing.T) {
	c := notify.NewCenterWithTimings(time.Hour, time.Hour, time.Hour)

	first := c.ShowToast("first", notify.LevelInfo)
	second := c.ShowToast("second", notify.LevelWarning)

	toasts := c.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].ID != first || toasts[1].ID != second {
		t.Fatal("expected toasts in display order")
	}
}

func TestCenter_ManualDismissIsIdempotent(t *testing.T) {
	c := notify.NewCenterWithTimings(time.Hour, time.Hour, 10*time.Millisecond)

	id := c.ShowToast("bye", notify.LevelInfo)
	c.DismissToast(id)
	c.DismissToast(id)
	c.DismissToast("no-such-id")

	waitFor(t, func() bool { return len(c.Toasts()) == 0 })

	// Dismissing after removal is still a no-op.
	c.DismissToast(id)
}

func TestCenter_PromptReplacesPriorPrompt(t *testing.T) {
	c := notify.NewCenterWithTimings(time.Hour, time.Hour, time.Hour)

	c.ShowPrompt(notify.Prompt{Title: "Clear wishlist?"})
	second := c.ShowPrompt(notify.Prompt{Title: "Login required", ConfirmPath: "/auth/modal"})

	p := c.Prompt()
	if p == nil || p.ID != second {
		t.Fatalf("expected the second prompt to be showing, got %+v", p)
	}
	if p.ConfirmLabel != "Confirm" || p.CancelLabel != "Cancel" {
		t.Fatalf("expected default button labels, got %q / %q", p.ConfirmLabel, p.CancelLabel)
	}
}

func TestCenter_PromptAutoDismiss(t *testing.T) {
	c := notify.NewCenterWithTimings(time.Hour, 30*time.Millisecond, 10*time.Millisecond)

	c.ShowPrompt(notify.Prompt{Title: "Going once"})
	waitFor(t, func() bool { return c.Prompt() == nil })
}

func TestCenter_DismissPromptIgnoresStaleID(t *testing.T) {
	c := notify.NewCenterWithTimings(time.Hour, time.Hour, time.Hour)

	stale := c.ShowPrompt(notify.Prompt{Title: "old"})
	current := c.ShowPrompt(notify.Prompt{Title: "new"})

	// The replaced prompt's timer must not take down its successor.
	c.DismissPrompt(stale)

	p := c.Prompt()
	if p == nil || p.ID != current || p.State != notify.StateVisible {
		t.Fatalf("expected current prompt untouched, got %+v", p)
	}
}

func TestCenter_SubscribersRunOnEveryChange(t *testing.T) {
	c := notify.NewCenterWithTimings(time.Hour, time.Hour, 10*time.Millisecond)

	var mu sync.Mutex
	calls := 0
	c.Subscribe(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	id := c.ShowToast("hello", notify.LevelSuccess)
	c.DismissToast(id)

	// Show, dismiss, and the timed removal each notify once.
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 3
	})
}
