package client

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"legalgpt-portal/models"
)

const maxEventSize = 1 << 20

// ErrStreamIncomplete is returned when the event stream ends before the answer does
var ErrStreamIncomplete = errors.New("answer stream ended before completion")

type streamChunk struct {
	Text string `json:"text"`
}

type streamError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// readStream consumes the backend's server-sent events: "chunk" events until a "done"
// event with the consultation or an "error" event.
func readStream(r io.Reader, onChunk func(string)) (*models.Consultation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var event string
	var data []string
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			field, value, _ := strings.Cut(line, ":")
			value = strings.TrimPrefix(value, " ")
			switch field {
			case "event":
				event = value
			case "data":
				data = append(data, value)
			}
			continue
		}

		payload := []byte(strings.Join(data, "\n"))
		name := event
		event, data = "", nil

		switch name {
		case "chunk":
			var chunk streamChunk
			if err := json.Unmarshal(payload, &chunk); err != nil {
				return nil, fmt.Errorf("failed to decode stream chunk: %w", err)
			}
			if onChunk != nil {
				onChunk(chunk.Text)
			}
		case "done":
			var c models.Consultation
			if err := json.Unmarshal(payload, &c); err != nil {
				return nil, fmt.Errorf("failed to decode consultation: %w", err)
			}
			return &c, nil
		case "error":
			var e streamError
			if err := json.Unmarshal(payload, &e); err != nil {
				return nil, fmt.Errorf("failed to decode stream error: %w", err)
			}
			return nil, &APIError{Status: http.StatusOK, Code: e.Code, Message: e.Message}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return nil, ErrStreamIncomplete
}
