package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrDelivery is returned when the endpoint cannot be reached, times out or
// answers with anything but 200 or 204.
var ErrDelivery error = errors.New("webhook delivery failed")

const (
	DefaultTimeout  = 15 * time.Second
	DefaultUsername = "FomoFrog Verify"

	maxErrorBody = 512
)

// Message is one embed posted to the channel. Image is sent as a file
// attachment named ImageName when present.
type Message struct {
	Title       string
	Description string
	Timestamp   time.Time
	Image       []byte
	ImageName   string
}

type payload struct {
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Timestamp   string      `json:"timestamp,omitempty"`
	Image       *embedImage `json:"image,omitempty"`
}

type embedImage struct {
	URL string `json:"url"`
}

type Sender struct {
	logs     *zap.SugaredLogger
	url      string
	username string
	client   *http.Client
}

type Option func(*Sender)

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		s.client = client
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *Sender) {
		s.client.Timeout = d
	}
}

func WithUsername(name string) Option {
	return func(s *Sender) {
		s.username = name
	}
}

func NewSender(logger *zap.SugaredLogger, url string, opts ...Option) *Sender {
	s := &Sender{
		logs:     logger,
		url:      url,
		username: DefaultUsername,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send posts msg once. A message with an image goes out as multipart form data
// with the JSON in a payload_json part; otherwise the body is plain JSON.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	body, contentType, err := s.encode(msg)
	if err != nil {
		return fmt.Errorf("%w: encode message: %w", ErrDelivery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, body)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrDelivery, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: post: %w", ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d: %s", ErrDelivery, resp.StatusCode, bytes.TrimSpace(detail))
	}

	s.logs.Infow("webhook message delivered",
		"title", msg.Title,
		"with_image", len(msg.Image) > 0,
		"status", resp.StatusCode)
	return nil
}

func (s *Sender) encode(msg Message) (io.Reader, string, error) {
	e := embed{
		Title:       msg.Title,
		Description: msg.Description,
	}
	if !msg.Timestamp.IsZero() {
		e.Timestamp = msg.Timestamp.UTC().Format(time.RFC3339)
	}

	if len(msg.Image) > 0 && msg.ImageName != "" {
		e.Image = &embedImage{URL: "attachment://" + msg.ImageName}
	}

	data, err := json.Marshal(payload{
		Username: s.username,
		Embeds:   []embed{e},
	})
	if err != nil {
		return nil, "", err
	}

	if e.Image == nil {
		return bytes.NewReader(data), "application/json", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("payload_json", string(data)); err != nil {
		return nil, "", err
	}
	part, err := w.CreatePart(imageHeader(msg.ImageName))
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(msg.Image); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// imageHeader describes the attached card; cards are always rendered as PNG.
func imageHeader(name string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
	h.Set("Content-Type", "image/png")
	return h
}
