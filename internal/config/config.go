package config

import "fmt"

type Config struct {
	TTS         TTSConfig         `yaml:"tts"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Audio       AudioConfig       `yaml:"audio"`
	Narration   NarrationConfig   `yaml:"narration"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type TTSConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	Language       string `yaml:"language"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type FFmpegConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	ProbePath      string `yaml:"probe_path"`
	VideoCodec     string `yaml:"video_codec"`
	PixelFormat    string `yaml:"pixel_format"`
	Tune           string `yaml:"tune"`
	AudioCodec     string `yaml:"audio_codec"`
	AudioBitrate   string `yaml:"audio_bitrate"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AudioConfig struct {
	BackgroundPath   string  `yaml:"background_path"`
	NarrationVolume  float64 `yaml:"narration_volume"`
	BackgroundVolume float64 `yaml:"background_volume"`
	ToneFrequency    int     `yaml:"tone_frequency"`
	ToneSeconds      int     `yaml:"tone_seconds"`
}

type NarrationConfig struct {
	Polish bool   `yaml:"polish"`
	Model  string `yaml:"model"`
}

type TranscriptConfig struct {
	Enabled bool `yaml:"enabled"`
}

type PathsConfig struct {
	WorkDir string `yaml:"work_dir"`
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Audio.NarrationVolume < 0 || c.Audio.BackgroundVolume < 0 {
		return fmt.Errorf("audio volumes must not be negative")
	}
	if c.Audio.BackgroundVolume > c.Audio.NarrationVolume && c.Audio.NarrationVolume != 0 {
		return fmt.Errorf("audio.background_volume must not exceed audio.narration_volume")
	}

	if c.TTS.BinaryPath == "" {
		c.TTS.BinaryPath = "gtts-cli"
	}
	if c.TTS.Language == "" {
		c.TTS.Language = "en"
	}
	if c.TTS.TimeoutSeconds == 0 {
		c.TTS.TimeoutSeconds = 120
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.VideoCodec == "" {
		c.FFmpeg.VideoCodec = "libx264"
	}
	if c.FFmpeg.PixelFormat == "" {
		c.FFmpeg.PixelFormat = "yuv420p"
	}
	if c.FFmpeg.Tune == "" {
		c.FFmpeg.Tune = "stillimage"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "192k"
	}
	if c.FFmpeg.TimeoutSeconds == 0 {
		c.FFmpeg.TimeoutSeconds = 300
	}
	if c.Audio.BackgroundPath == "" {
		c.Audio.BackgroundPath = "background.mp3"
	}
	if c.Audio.NarrationVolume == 0 {
		c.Audio.NarrationVolume = 1.0
	}
	if c.Audio.BackgroundVolume == 0 {
		c.Audio.BackgroundVolume = 0.2
	}
	if c.Audio.ToneFrequency == 0 {
		c.Audio.ToneFrequency = 220
	}
	if c.Audio.ToneSeconds == 0 {
		c.Audio.ToneSeconds = 600
	}
	if c.Narration.Model == "" {
		c.Narration.Model = "gemini-2.5-flash"
	}
	if c.Paths.WorkDir == "" {
		c.Paths.WorkDir = "tmp_pdf"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
