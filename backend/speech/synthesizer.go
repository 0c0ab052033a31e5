package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

const (
	defaultVoiceLang = "en"
	voicesTimeout    = 10 * time.Second
	// espeak amplitude is 0-200 where 100 is the normal volume
	fullAmplitude = 100
)

type commandRunner func(ctx context.Context, stdin string, name string, args ...string) ([]byte, error)

// CommandSynthesizer speaks through an espeak compatible command line tool.
type CommandSynthesizer struct {
	binary string
	run    commandRunner

	api.Synthesizer
}

func NewCommandSynthesizer(binary string) *CommandSynthesizer {
	return &CommandSynthesizer{
		binary: binary,
		run:    runCommand,
	}
}

func NewUtterance(text string, voice *apitype.Voice, volume apitype.VolumeLevel) *api.Utterance {
	return &api.Utterance{
		Id:     uuid.New().String(),
		Text:   text,
		Voice:  voice,
		Volume: volume,
	}
}

func (s *CommandSynthesizer) Voices(ctx context.Context) ([]*apitype.Voice, error) {
	ctx, cancel := context.WithTimeout(ctx, voicesTimeout)
	defer cancel()

	output, err := s.run(ctx, "", s.binary, "--voices")
	if err != nil {
		return nil, fmt.Errorf("listing voices with %s failed: %w, output: %s", s.binary, err, output)
	}
	voices := parseVoices(output)
	logger.Debug.Printf("Found %d voices", len(voices))
	return voices, nil
}

func (s *CommandSynthesizer) Speak(ctx context.Context, utterance *api.Utterance) error {
	if utterance.Volume == apitype.VolumeMuted {
		logger.Debug.Printf("Utterance %s muted, not speaking", utterance.Id)
		return nil
	}

	args := speakArgs(utterance)
	logger.Debug.Printf("Utterance %s: %s %s", utterance.Id, s.binary, strings.Join(args, " "))

	startTime := time.Now()
	if output, err := s.run(ctx, utterance.Text, s.binary, args...); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("utterance %s timed out", utterance.Id)
		}
		return fmt.Errorf("utterance %s failed: %w, output: %s", utterance.Id, err, output)
	}
	logger.Trace.Printf("Utterance %s spoken in %s", utterance.Id, time.Since(startTime))
	return nil
}

func speakArgs(utterance *api.Utterance) []string {
	amplitude := int(utterance.Volume.Gain() * fullAmplitude)
	args := []string{"-a", strconv.Itoa(amplitude)}
	if utterance.Voice != nil {
		args = append(args, "-v", voiceIdentifier(utterance.Voice))
	}
	return append(args, "--stdin")
}

func voiceIdentifier(voice *apitype.Voice) string {
	if voice.File != "" {
		return voice.File
	}
	return voice.Lang
}

// parseVoices reads the table printed by espeak --voices:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  af              --/M      Afrikaans          gmw/af
func parseVoices(output []byte) []*apitype.Voice {
	var voices []*apitype.Voice
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		lang := fields[1]
		file := ""
		if len(fields) > 4 {
			file = fields[4]
		}
		voices = append(voices, &apitype.Voice{
			Name:    strings.ReplaceAll(fields[3], "_", " "),
			Lang:    lang,
			File:    file,
			Default: lang == defaultVoiceLang,
		})
	}
	return voices
}

func runCommand(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	return cmd.CombinedOutput()
}
