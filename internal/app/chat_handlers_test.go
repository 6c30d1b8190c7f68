package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/ui/modals"
)

func TestSend_BlankInputDoesNothing(t *testing.T) {
	m, tb := testModel(t, nil)

	for _, input := range []string{"", "   ", "\n\t"} {
		m.chat.SetInput(input)
		cmd := update(m, enterKey)
		runCmd(cmd)

		if len(m.chat.Messages()) != 0 {
			t.Errorf("input %q added %d messages", input, len(m.chat.Messages()))
		}
		if m.chat.IsTyping() {
			t.Errorf("input %q started the typing indicator", input)
		}
	}
	if tb.count("POST /chat") != 0 {
		t.Errorf("blank sends made %d /chat calls", tb.count("POST /chat"))
	}
}

func TestSend_SuccessAddsUserThenBot(t *testing.T) {
	var got struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	m, tb := testModel(t, map[string]http.HandlerFunc{
		"POST /chat": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"response": "Hi! How can I help?", "typing_delay": 0.01}`))
		},
	})

	m.chat.SetInput("  hello there ")
	cmd := update(m, enterKey)

	msgs := m.chat.Messages()
	if len(msgs) != 1 || !msgs[0].IsUser() {
		t.Fatalf("expected one user message, got %+v", msgs)
	}
	if msgs[0].Text != "  hello there " {
		t.Errorf("user message should keep untrimmed text, got %q", msgs[0].Text)
	}
	if m.chat.RawInput() != "" {
		t.Error("input should be cleared after send")
	}
	if !m.chat.IsTyping() {
		t.Error("typing indicator should show while the reply is pending")
	}

	resp := mustFind[ChatResponseMsg](t, cmd)
	if resp.Err != nil {
		t.Fatalf("unexpected error: %v", resp.Err)
	}
	if got.UserID != "test_user_123" || got.Message != "  hello there " {
		t.Errorf("backend got %+v", got)
	}

	ready := mustFind[ReplyReadyMsg](t, update(m, resp))
	if !m.chat.IsTyping() {
		t.Error("indicator should stay until the delay elapses")
	}
	update(m, ready)

	msgs = m.chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].IsUser() || msgs[1].Text != "Hi! How can I help?" || msgs[1].IsError {
		t.Errorf("unexpected bot message %+v", msgs[1])
	}
	if m.chat.IsTyping() {
		t.Error("typing indicator should clear after the reply")
	}
	if tb.count("POST /chat") != 1 {
		t.Errorf("expected 1 /chat call, got %d", tb.count("POST /chat"))
	}
}

func TestSend_FailureAddsErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name:    "server detail",
			handler: jsonHandler(http.StatusInternalServerError, `{"detail": "OpenAI quota exceeded"}`),
			want:    bot.ErrorPrefix + "OpenAI quota exceeded",
		},
		{
			name:    "no detail",
			handler: jsonHandler(http.StatusBadGateway, ``),
			want:    bot.ErrorPrefix + "Bad Gateway",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel(t, map[string]http.HandlerFunc{"POST /chat": tt.handler})

			m.chat.SetInput("hi")
			resp := mustFind[ChatResponseMsg](t, update(m, enterKey))
			if resp.Err == nil {
				t.Fatal("expected an error")
			}
			if cmd := update(m, resp); cmd != nil {
				t.Error("a failed send should not schedule a reply")
			}

			msgs := m.chat.Messages()
			if len(msgs) != 2 {
				t.Fatalf("expected user + error message, got %d", len(msgs))
			}
			if !msgs[1].IsError || msgs[1].Text != tt.want {
				t.Errorf("error message = %+v, want %q", msgs[1], tt.want)
			}
			if m.chat.IsTyping() {
				t.Error("typing indicator should clear after a failure")
			}
		})
	}
}

func TestSend_InterleavedSendsKeepIndicator(t *testing.T) {
	m, _ := testModel(t, nil)

	m.chat.SetInput("one")
	update(m, enterKey)
	m.chat.SetInput("two")
	update(m, enterKey)

	if m.chat.PendingCount() != 2 {
		t.Fatalf("pending = %d, want 2", m.chat.PendingCount())
	}

	update(m, ReplyReadyMsg{Text: "first"})
	if !m.chat.IsTyping() {
		t.Error("indicator should stay while the second send is pending")
	}
	update(m, ChatResponseMsg{Err: errors.New("connection refused")})
	if m.chat.IsTyping() {
		t.Error("indicator should clear once both sends resolved")
	}
	if n := len(m.chat.Messages()); n != 4 {
		t.Errorf("expected 4 messages, got %d", n)
	}
}

func TestSend_UsesCurrentRecipient(t *testing.T) {
	var userID string
	m, _ := testModel(t, map[string]http.HandlerFunc{
		"POST /chat": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			userID = body["user_id"]
			w.Write([]byte(`{"response": "ok"}`))
		},
	})

	update(m, ctrlKey('u'))
	prompt, ok := m.modal.State.(*modals.PromptState)
	if !ok {
		t.Fatalf("ctrl+u should open the recipient prompt, got %T", m.modal.State)
	}
	prompt.Input.SetValue("ig_987")
	update(m, enterKey)

	if m.modal.IsVisible() {
		t.Error("prompt should close on submit")
	}
	if m.chat.Recipient() != "ig_987" || m.config.GetTestUserID() != "ig_987" {
		t.Errorf("recipient = %q", m.chat.Recipient())
	}

	m.chat.SetInput("hi")
	mustFind[ChatResponseMsg](t, update(m, enterKey))
	if userID != "ig_987" {
		t.Errorf("backend got user_id %q", userID)
	}
}

func TestRecipientPrompt_RejectsBlank(t *testing.T) {
	m, _ := testModel(t, nil)

	update(m, ctrlKey('u'))
	m.modal.State.(*modals.PromptState).Input.SetValue("   ")
	update(m, enterKey)

	if !m.modal.IsVisible() || m.modal.GetError() == "" {
		t.Error("blank recipient should keep the prompt open with an error")
	}
	if m.chat.Recipient() != "test_user_123" {
		t.Errorf("recipient changed to %q", m.chat.Recipient())
	}
}

func TestMediaPrompt_LocalOnly(t *testing.T) {
	readClipboard = func() (string, error) { return "https://cdn.example.com/cat.png", nil }
	t.Cleanup(func() { readClipboard = defaultReadClipboard })

	m, tb := testModel(t, nil)

	update(m, ctrlKey('g'))
	prompt, ok := m.modal.State.(*modals.PromptState)
	if !ok || prompt.Kind != modals.PromptImageURL {
		t.Fatalf("ctrl+g should open the image prompt, got %T", m.modal.State)
	}
	if prompt.Value() != "https://cdn.example.com/cat.png" {
		t.Errorf("prompt should prefill from clipboard, got %q", prompt.Value())
	}
	update(m, enterKey)

	msgs := m.chat.Messages()
	if len(msgs) != 1 || msgs[0].Kind != bot.KindImage || msgs[0].URL != "https://cdn.example.com/cat.png" {
		t.Fatalf("unexpected transcript %+v", msgs)
	}
	if msgs[0].IsUser() {
		t.Error("media previews are bot messages")
	}
	if tb.total() != 0 {
		t.Errorf("media preview made %d backend calls", tb.total())
	}
}

func TestMediaPrompt_EmptyURLDoesNothing(t *testing.T) {
	readClipboard = func() (string, error) { return "not a url", nil }
	t.Cleanup(func() { readClipboard = defaultReadClipboard })

	m, _ := testModel(t, nil)

	update(m, ctrlKey('a'))
	prompt := m.modal.State.(*modals.PromptState)
	if prompt.Kind != modals.PromptAudioURL || prompt.Value() != "" {
		t.Fatalf("audio prompt should open empty, got %q", prompt.Value())
	}
	update(m, enterKey)

	if len(m.chat.Messages()) != 0 {
		t.Error("empty URL should not add a message")
	}
	if m.modal.IsVisible() {
		t.Error("prompt should close")
	}
}

func TestCopyLastReply(t *testing.T) {
	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = defaultWriteClipboard })

	m, _ := testModel(t, nil)

	update(m, ctrlKey('y'))
	if m.footer.FlashText() != "No bot reply to copy" {
		t.Errorf("flash = %q", m.footer.FlashText())
	}

	m.chat.AddMessage(bot.NewBotMessage("the reply"))
	msg := mustFind[ClipboardCopiedMsg](t, update(m, ctrlKey('y')))
	update(m, msg)

	if copied != "the reply" {
		t.Errorf("copied %q", copied)
	}
	if m.footer.FlashText() != "Copied last reply" {
		t.Errorf("flash = %q", m.footer.FlashText())
	}
}

func TestClearTranscript(t *testing.T) {
	m, _ := testModel(t, nil)
	m.chat.AddMessage(bot.NewBotMessage("x"))
	update(m, ctrlKey('l'))
	if len(m.chat.Messages()) != 0 {
		t.Error("ctrl+l should clear the transcript")
	}
}
