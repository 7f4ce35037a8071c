package matchframe

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FindFFmpeg locates the ffmpeg binary.
// Priority: 1) custom path, 2) FFMPEG_PATH env, 3) PATH, 4) common locations.
func FindFFmpeg(custom string) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		if p, err := exec.LookPath(custom); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, custom)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	default:
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// BuildArgs returns the ffmpeg arguments that cut source to exactly the frame
// range [frame, frame] and write that single frame to output as PNG.
func BuildArgs(source string, frame int, output string) []string {
	return ffmpeg.
		Input(source).
		Filter("trim", ffmpeg.Args{}, ffmpeg.KwArgs{
			"start_frame": frame,
			"end_frame":   frame + 1,
		}).
		Output(output, ffmpeg.KwArgs{
			"frames:v": 1,
			"vcodec":   "png",
			"f":        "image2",
		}).
		OverWriteOutput().
		GetArgs()
}
