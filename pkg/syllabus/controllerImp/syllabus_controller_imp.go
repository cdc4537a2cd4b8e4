package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"studypal/entities"
	"studypal/pkg/subject"
	"studypal/pkg/syllabus/repository"
)

type SyllabusCtrl struct {
	repo     repository.SyllabusRepository
	allow    map[string]bool
	maxBytes int
}

func New(repo repository.SyllabusRepository) *SyllabusCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(os.Getenv("SYLLABUS_ALLOWED_DOMAINS"), ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	mb := 1500000
	if v := os.Getenv("SYLLABUS_MAX_BYTES_PER_PAGE"); v != "" {
		fmt.Sscanf(v, "%d", &mb)
	}
	return &SyllabusCtrl{repo: repo, allow: allow, maxBytes: mb}
}

func (h *SyllabusCtrl) List(c echo.Context) error {
	subjects, err := h.repo.ListSubjects()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	type outSubject struct {
		entities.SyllabusSubject
		Chapters []entities.SyllabusChapter `json:"chapters"`
	}
	out := make([]outSubject, 0, len(subjects))
	for _, s := range subjects {
		chapters, err := h.repo.ListChapters(s.SubjectID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		out = append(out, outSubject{SyllabusSubject: s, Chapters: chapters})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SyllabusCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Subject string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
	}

	title, chapters, err := fetchOutline(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	name := body.Subject
	if name == "" {
		name = title
	}
	name = subject.Normalize(name)
	if name == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "could not determine subject name"})
	}

	s, err := h.repo.UpsertSubject(name, body.URL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err := h.repo.ReplaceChapters(s.SubjectID, chapters); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"subject": s, "chapters": len(chapters)})
}

// fetchOutline pulls a chapter outline from a syllabus page: the page title
// plus heading/list-item texts, deduplicated, in document order.
func fetchOutline(u string, maxBytes int) (string, []string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", nil, fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", nil, err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return "", nil, fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", nil, err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var chapters []string
	seen := map[string]bool{}
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h2,h3,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t == "" || len(t) > 200 || seen[t] {
			return
		}
		seen[t] = true
		chapters = append(chapters, t)
	})
	return title, chapters, nil
}
