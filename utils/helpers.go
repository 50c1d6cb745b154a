package utils

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// ReadTextFile returns the file's lines joined with "\n", including a
// trailing newline.
func ReadTextFile(path string) (body string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		body += scanner.Text() + "\n"
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

// FrameCounter measures frames per second over a fixed interval.
type FrameCounter struct {
	Interval time.Duration
	frames   int
	total    uint64
	last     time.Time
	fps      float64
}

func NewFrameCounter(interval time.Duration, now time.Time) *FrameCounter {
	return &FrameCounter{Interval: interval, last: now}
}

// Tick counts one frame. It reports true when a new FPS value was taken.
func (f *FrameCounter) Tick(now time.Time) bool {
	f.frames++
	f.total++
	var elapsed = now.Sub(f.last)
	if elapsed < f.Interval {
		return false
	}
	f.fps = float64(f.frames) / elapsed.Seconds()
	f.frames = 0
	f.last = now
	return true
}

func (f *FrameCounter) FPS() float64 {
	return f.fps
}

func (f *FrameCounter) Total() uint64 {
	return f.total
}
