package formutil

import (
	"net/http"
	"testing"

	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/lwandasite/internal/testutil"
)

func TestNewBase(t *testing.T) {
	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/contact"))
	b := NewBase(req, "Contact", models.PageContact)

	if b.Title != "Contact" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.ActivePage != models.PageContact {
		t.Errorf("ActivePage = %q", b.ActivePage)
	}
	if b.HasStatus() {
		t.Error("new Base should have no status")
	}
}

func TestSetErrorEscapes(t *testing.T) {
	var b Base
	b.SetError(`<b>"bad"</b>`)
	if string(b.Error) != "&lt;b&gt;&#34;bad&#34;&lt;/b&gt;" {
		t.Errorf("Error = %q", b.Error)
	}
	if !b.HasStatus() {
		t.Error("HasStatus should be true after SetError")
	}
}

func TestSetSuccessClearsError(t *testing.T) {
	var b Base
	b.SetError("Failed to send. Please try again.")
	b.SetSuccess("Message sent successfully.")
	if b.Error != "" {
		t.Errorf("Error = %q, want empty", b.Error)
	}
	if b.Success != "Message sent successfully." {
		t.Errorf("Success = %q", b.Success)
	}

	b.SetError("x")
	if b.Success != "" {
		t.Error("SetError should clear Success")
	}
}
