package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"studypal/pkg/plan/types"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) chat(system, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content")
	}
	return content, nil
}

func (c *openAI) GeneratePlan(req types.PlanRequest) (*types.StudyPlan, error) {
	content, err := c.chat(
		"You are a study coach. Reply ONLY with valid JSON for the requested study plan.",
		renderPlanPrompt(req),
	)
	if err != nil {
		return nil, err
	}
	var p types.StudyPlan
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &p); err != nil {
		return nil, fmt.Errorf("parse plan: %v / raw: %s", err, content)
	}
	if len(p.Weeks) == 0 {
		return nil, fmt.Errorf("plan has no weeks")
	}
	return &p, nil
}

func (c *openAI) GradeAnswers(items []types.GradingItem) ([]types.Verdict, error) {
	content, err := c.chat(
		"You are a strict but fair examiner. Reply ONLY with valid JSON.",
		renderGradingPrompt(items),
	)
	if err != nil {
		return nil, err
	}
	raw := ExtractJSON(content)
	var payload struct {
		Verdicts []types.Verdict `json:"verdicts"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || len(payload.Verdicts) == 0 {
		var arr []types.Verdict
		if err2 := json.Unmarshal([]byte(raw), &arr); err2 != nil {
			return nil, fmt.Errorf("parse verdicts: %v / raw: %s", err, content)
		}
		payload.Verdicts = arr
	}
	if len(payload.Verdicts) != len(items) {
		return nil, fmt.Errorf("got %d verdicts for %d items", len(payload.Verdicts), len(items))
	}
	return payload.Verdicts, nil
}

func (c *openAI) SolveDoubt(question string, context []Message) (string, error) {
	var sb strings.Builder
	for _, m := range context {
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("student: ")
	sb.WriteString(question)
	return c.chat(
		"You are a patient tutor. Answer the student's doubt clearly and briefly.",
		sb.String(),
	)
}

func renderPlanPrompt(req types.PlanRequest) string {
	b, _ := json.MarshalIndent(req, "", "  ")
	return fmt.Sprintf(`Build a spaced-repetition study plan as JSON with this shape:
{"targetDate":"YYYY-MM-DD","weeks":[{"weekNumber":0,"days":[{"date":"YYYY-MM-DD","entries":[{"subject":"...","chapter":"...","taskType":"learning|revision|practice","estimatedTime":45,"status":"pending"},{"break":20}]}]}]}
Rules:
- cover the request's subjects and chapters, weakest subjects more often
- day dates run from startDate toward targetDate, skipping non-preferred days
- insert a break entry between long stretches of tasks
- every task status starts as "pending"

REQUEST:
%s`, b)
}

func renderGradingPrompt(items []types.GradingItem) string {
	b, _ := json.MarshalIndent(items, "", "  ")
	return fmt.Sprintf(`Grade each question/answer pair. Reply as:
{"verdicts":[{"correct":true,"marks":1,"maxMarks":1,"mistake":"...","correctAnswer":"..."}]}
One verdict per item, same order. Award partial marks where deserved.

ITEMS:
%s`, b)
}
