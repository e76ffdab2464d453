package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// AuthModal renders the sign-in / sign-up modal. Inputs bind datastar
// signals whose names match the JSON auth API, so submitting posts the
// signal set as the request body. Failures come back as a patch of the
// inline alert area; success closes the modal.
func AuthModal() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="auth-modal" class="modal-backdrop" data-signals="{email: '', password: '', rememberMe: false, firstName: '', lastName: '', confirmPassword: ''}" data-on-click="@delete('/auth/modal')">
<div class="modal" data-on-click__stop>
<div id="auth-alert" class="auth-alert"></div>
<h2>Sign In</h2>
<input type="email" data-bind="email" placeholder="Email" required>
<input type="password" data-bind="password" placeholder="Password" required>
<label><input type="checkbox" data-bind="rememberMe"> Remember me</label>
<button type="submit" data-on-click="@post('/auth/modal/login')">Sign In</button>
<div class="auth-divider"><span>Or continue with</span></div>
<div class="auth-social">
<button class="auth-social-btn" data-on-click="@post('/auth/social/Google')">Google</button>
<button class="auth-social-btn" data-on-click="@post('/auth/social/Facebook')">Facebook</button>
</div>
<h2>Create Account</h2>
<input type="text" data-bind="firstName" placeholder="First name" required>
<input type="text" data-bind="lastName" placeholder="Last name" required>
<input type="email" data-bind="email" placeholder="Email" required>
<input type="password" data-bind="password" placeholder="Password (8+ characters)" required>
<input type="password" data-bind="confirmPassword" placeholder="Confirm password" required>
<button type="submit" data-on-click="@post('/auth/modal/register')">Sign Up</button>
</div>
</div>
`)
		return err
	})
}

// AuthAlert renders the modal's inline alert area with a message.
func AuthAlert(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="auth-alert" class="auth-alert auth-alert-visible">%s</div>`, esc(message))
		return err
	})
}

// AuthModalClosed renders the empty modal container, closing the
// modal while keeping the patch target in the page.
func AuthModalClosed() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="auth-modal"></div>`)
		return err
	})
}
