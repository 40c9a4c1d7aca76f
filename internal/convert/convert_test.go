package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgpai22/subconv/internal/config"
	"github.com/mgpai22/subconv/internal/subtitle"
	"github.com/mgpai22/subconv/internal/subtitle/txt"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func newTestConverter() *Converter {
	cfg := config.Default()
	return NewConverter(&cfg, nil)
}

func TestConvertSingleFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "episode.txt",
		"\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nHello\r\n\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nWorld\r\n")
	output := filepath.Join(dir, "out", "episode.srt")

	res, err := newTestConverter().Convert(context.Background(), Job{
		Input:  input,
		Output: output,
		Format: subtitle.FormatSRT,
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.Cues != 2 || res.Mode != txt.ModeTimestamped {
		t.Errorf("result: got %+v", res)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld\n\n"
	if string(got) != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunKeepsJobOrder(t *testing.T) {
	dir := t.TempDir()
	contents := []string{
		"alpha\nbeta",
		"A1\nA2\n\nB1\nB2\n\nC1\nC2",
		"00:01 one\n00:02 two\n00:03 three",
		"just one line",
	}
	wantCues := []int{2, 3, 3, 1}

	var jobs []Job
	for i, c := range contents {
		name := string(rune('a'+i)) + ".txt"
		jobs = append(jobs, Job{
			Input:  writeInput(t, dir, name, c),
			Output: filepath.Join(dir, name+".vtt"),
			Format: subtitle.FormatVTT,
		})
	}

	results, err := newTestConverter().Run(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	for i, r := range results {
		if r.Job.Input != jobs[i].Input {
			t.Errorf("result %d: input %s, want %s", i, r.Job.Input, jobs[i].Input)
		}
		if r.Cues != wantCues[i] {
			t.Errorf("result %d: %d cues, want %d", i, r.Cues, wantCues[i])
		}
		out, err := os.ReadFile(jobs[i].Output)
		if err != nil {
			t.Fatalf("failed to read output %d: %v", i, err)
		}
		if !strings.HasPrefix(string(out), "WEBVTT\n\n") {
			t.Errorf("output %d missing VTT header", i)
		}
	}
}

func TestRunReportsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{
		{
			Input:  writeInput(t, dir, "good.txt", "some words"),
			Output: filepath.Join(dir, "good.srt"),
			Format: subtitle.FormatSRT,
		},
		{
			Input:  writeInput(t, dir, "empty.txt", "\n\n   \n"),
			Output: filepath.Join(dir, "empty.srt"),
			Format: subtitle.FormatSRT,
		},
	}

	_, err := newTestConverter().Run(context.Background(), jobs, 2)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.Is(err, txt.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
}

func TestRunCanceledContext(t *testing.T) {
	dir := t.TempDir()
	job := Job{
		Input:  writeInput(t, dir, "a.txt", "words"),
		Output: filepath.Join(dir, "a.srt"),
		Format: subtitle.FormatSRT,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestConverter().Run(ctx, []Job{job, job}, 2); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := newTestConverter().Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsLetterlessInput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "numbers.txt", "1\n00:00:01,000 --> 00:00:02,000\n42\n")

	sub, _, err := newTestConverter().Load(input)
	if err == nil {
		t.Fatalf("expected error, got %d cues", len(sub.Cues))
	}
	if !errors.Is(err, txt.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
}
