// Package formutil provides helpers for form re-rendering after a submission.
//
// When a form submission fails, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - A message explaining what went wrong
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type contactData struct {
//		formutil.Base
//		Name  string
//		Email string
//	}
//
//	data := contactData{
//		Base:  formutil.NewBase(r, "Contact", models.PageContact),
//		Name:  name,
//		Email: email,
//	}
//	data.SetError("Failed to send. Please try again.")
//	templates.Render(w, r, "contact/show", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
// It embeds viewdata.BaseVM for site chrome, and adds the result of the last submission.
type Base struct {
	viewdata.BaseVM
	Error   template.HTML
	Success string
}

// NewBase creates a fully populated Base for a form page.
func NewBase(r *http.Request, title, page string) Base {
	return Base{
		BaseVM: viewdata.New(r, title, page),
	}
}

// SetError sets the error message, escaping msg.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
	b.Success = ""
}

// SetSuccess sets the success message and clears any error.
func (b *Base) SetSuccess(msg string) {
	b.Success = msg
	b.Error = ""
}

// HasStatus reports whether a submission result is shown.
func (b Base) HasStatus() bool {
	return b.Error != "" || b.Success != ""
}
