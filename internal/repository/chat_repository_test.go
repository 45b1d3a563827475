package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/willowmind/willow/internal/llm"
	"github.com/willowmind/willow/internal/models"
)

func newStubChatRepository(t *testing.T, handler http.HandlerFunc) (*ChatRepository, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	stores := newTestStores(t)
	client := llm.NewChatClient("test-key", server.URL+"/v1", "gpt-4o-mini")
	return NewChatRepository(stores.Chat, client), server
}

func userHistory(text string) []models.ChatMessage {
	return []models.ChatMessage{{RoomID: 1, Text: text, FromUser: true, CreatedAt: time.Now()}}
}

func TestAIResponseServerErrorBecomesDescriptiveString(t *testing.T) {
	repo, _ := newStubChatRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad key"))
	})

	got := repo.AIResponse(context.Background(), userHistory("hi"))
	if got != "API Error 401: bad key" {
		t.Fatalf("AIResponse() = %q, want %q", got, "API Error 401: bad key")
	}
}

func TestAIResponseEmptyContentBecomesFixedString(t *testing.T) {
	repo, _ := newStubChatRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":""}}]}`))
	})

	got := repo.AIResponse(context.Background(), userHistory("hi"))
	if got != llm.EmptyResponseMessage {
		t.Fatalf("AIResponse() = %q, want %q", got, llm.EmptyResponseMessage)
	}
}

func TestAIResponseNoChoicesBecomesFixedString(t *testing.T) {
	repo, _ := newStubChatRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	got := repo.AIResponse(context.Background(), userHistory("hi"))
	if got != llm.EmptyResponseMessage {
		t.Fatalf("AIResponse() = %q, want %q", got, llm.EmptyResponseMessage)
	}
}

func TestAIResponseTransportFailureBecomesNetworkError(t *testing.T) {
	repo, server := newStubChatRepository(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	got := repo.AIResponse(context.Background(), userHistory("hi"))
	if !strings.HasPrefix(got, "Network Error: ") {
		t.Fatalf("AIResponse() = %q, want Network Error prefix", got)
	}
}

func TestAIResponseSuccessReturnsContentAndPersistsNothing(t *testing.T) {
	repo, _ := newStubChatRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	})

	room, err := repo.CreateRoom("check-in")
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}

	got := repo.AIResponse(context.Background(), userHistory("hi"))
	if got != "hello there" {
		t.Fatalf("AIResponse() = %q, want %q", got, "hello there")
	}

	messages, err := repo.Messages(room.ID)
	if err != nil {
		t.Fatalf("Messages() failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("AIResponse must not persist messages, found %d", len(messages))
	}
}
