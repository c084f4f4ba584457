package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative volume rejected",
			config: Config{
				Audio: AudioConfig{NarrationVolume: -1},
			},
			wantErr: true,
		},
		{
			name: "background louder than narration rejected",
			config: Config{
				Audio: AudioConfig{NarrationVolume: 0.5, BackgroundVolume: 0.9},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.TTS.BinaryPath != "gtts-cli" {
		t.Errorf("TTS.BinaryPath = %v, want gtts-cli", cfg.TTS.BinaryPath)
	}
	if cfg.TTS.Language != "en" {
		t.Errorf("TTS.Language = %v, want en", cfg.TTS.Language)
	}
	if cfg.FFmpeg.VideoCodec != "libx264" {
		t.Errorf("FFmpeg.VideoCodec = %v, want libx264", cfg.FFmpeg.VideoCodec)
	}
	if cfg.FFmpeg.AudioBitrate != "192k" {
		t.Errorf("FFmpeg.AudioBitrate = %v, want 192k", cfg.FFmpeg.AudioBitrate)
	}
	if cfg.Audio.NarrationVolume != 1.0 || cfg.Audio.BackgroundVolume != 0.2 {
		t.Errorf("mix volumes = %v/%v, want 1.0/0.2", cfg.Audio.NarrationVolume, cfg.Audio.BackgroundVolume)
	}
	if cfg.Paths.WorkDir != "tmp_pdf" {
		t.Errorf("Paths.WorkDir = %v, want tmp_pdf", cfg.Paths.WorkDir)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
tts:
  binary_path: "/usr/local/bin/gtts-cli"
  language: "vi"

ffmpeg:
  video_codec: "libx264"
  audio_bitrate: "128k"

audio:
  background_path: "assets/ambient.mp3"
  background_volume: 0.1

paths:
  work_dir: "data/work"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TTS.Language != "vi" {
		t.Errorf("Language = %v, want %v", cfg.TTS.Language, "vi")
	}
	if cfg.Audio.BackgroundPath != "assets/ambient.mp3" {
		t.Errorf("BackgroundPath = %v, want assets/ambient.mp3", cfg.Audio.BackgroundPath)
	}
	if cfg.Audio.BackgroundVolume != 0.1 {
		t.Errorf("BackgroundVolume = %v, want 0.1", cfg.Audio.BackgroundVolume)
	}
	if cfg.Paths.WorkDir != "data/work" {
		t.Errorf("WorkDir = %v, want data/work", cfg.Paths.WorkDir)
	}

	// Unset fields still get defaults
	if cfg.FFmpeg.AudioCodec != "aac" {
		t.Errorf("AudioCodec = %v, want aac", cfg.FFmpeg.AudioCodec)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
