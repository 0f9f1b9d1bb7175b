package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"ecaretag/internal/classifier"
	"ecaretag/internal/config"
	"ecaretag/internal/models"
	"ecaretag/internal/testutil"
)

func classifyApp(t *testing.T) *fiber.App {
	t.Helper()
	engine := classifier.New(testutil.TestTable(t))
	handler := NewClassifyHandler(engine, &config.Config{MaxTextLen: 1000})

	app := fiber.New()
	app.Post("/classify", handler.Classify)
	return app
}

func postForm(t *testing.T, app *fiber.App, form url.Values) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("POST", "/classify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestClassifyEndpoint(t *testing.T) {
	app := classifyApp(t)

	resp := postForm(t, app, url.Values{"text": {"Solar energy for elderly care communities"}})
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}

	var result models.ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if len(result.Codes) != 2 || result.Codes[0] != "E1" || result.Codes[1] != "C2" {
		t.Errorf("codes = %v, want [E1 C2]", result.Codes)
	}
	for _, code := range result.Codes {
		if result.Reasoning[code] == "" {
			t.Errorf("no reasoning for code %s", code)
		}
	}
}

func TestClassifyEndpointNoMatch(t *testing.T) {
	app := classifyApp(t)

	resp := postForm(t, app, url.Values{"text": {"a completely unrelated sentence about weather"}})
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 for zero matches", resp.StatusCode)
	}

	var result models.ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(result.Codes) != 0 {
		t.Errorf("codes = %v, want empty", result.Codes)
	}
	if result.Codes == nil {
		t.Error("codes serialized as null, want []")
	}
}

func TestClassifyEndpointRejectsBlankText(t *testing.T) {
	app := classifyApp(t)

	for _, form := range []url.Values{
		{},
		{"text": {""}},
		{"text": {"   \n"}},
	} {
		resp := postForm(t, app, form)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("form %v: status = %d, want 400", form, resp.StatusCode)
		}
	}
}

func TestClassifyEndpointRejectsOversizeText(t *testing.T) {
	app := classifyApp(t)

	resp := postForm(t, app, url.Values{"text": {strings.Repeat("solar ", 400)}})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 for oversize text", resp.StatusCode)
	}
}
