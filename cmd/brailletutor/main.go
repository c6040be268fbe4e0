package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/tactileworks/brailletutor/internal/actuator"
	"github.com/tactileworks/brailletutor/internal/audio"
	"github.com/tactileworks/brailletutor/internal/braille"
	"github.com/tactileworks/brailletutor/internal/config"
	"github.com/tactileworks/brailletutor/internal/display"
	"github.com/tactileworks/brailletutor/internal/driver/fake"
	"github.com/tactileworks/brailletutor/internal/input"
	"github.com/tactileworks/brailletutor/internal/tutor"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		sim        = flag.Bool("sim", false, "run without hardware: fake cell and audio, simulated presses via SIGUSR1/SIGUSR2")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config ----
	cfg := config.Default()
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
	} else {
		cfg = c
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go trapSignals(cancel)

	var (
		channels [braille.NumDots]actuator.Channel
		player   audio.Player
		inputs   tutor.Inputs
	)

	if *sim {
		channels, player, inputs = buildSim(ctx)
	} else {
		channels, player, inputs = buildHardware(ctx, cfg)
	}

	if err := player.SetVolume(cfg.Audio.Volume); err != nil {
		log.Fatal().Err(err).Msg("set volume")
	}

	renderer := display.NewRenderer(channels, cfg.Timing.Settle())
	machine := tutor.New(renderer, player, inputs, tutor.Config{
		Hold:       cfg.Timing.Hold(),
		Intro:      cfg.Timing.Intro(),
		IntroTrack: cfg.Audio.IntroTrack,
		Poll:       cfg.Timing.Poll(),
	})

	log.Info().Msg("setup complete")
	if err := machine.Startup(time.Now()); err != nil {
		log.Fatal().Err(err).Msg("startup sequence failed")
	}
	if err := machine.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("control loop stopped")
	}
	log.Info().Msg("shutting down")
}

// buildHardware wires the real peripherals: GPIO buttons, the PCA9685 servo
// bank on I2C, and the MP3 module on the UART.
func buildHardware(ctx context.Context, cfg *config.Config) ([braille.NumDots]actuator.Channel, audio.Player, tutor.Inputs) {
	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("host init")
	}

	// Buttons.
	pair := &input.Pair{}
	for _, b := range []struct {
		name string
		pin  string
		dst  **input.Button
	}{
		{"next", cfg.Buttons.NextPin, &pair.Next},
		{"prev", cfg.Buttons.PrevPin, &pair.Prev},
	} {
		p := gpioreg.ByName(b.pin)
		if p == nil {
			log.Fatal().Str("pin", b.pin).Msg("unknown gpio pin")
		}
		btn, err := input.NewButton(b.name, p, cfg.Buttons.Debounce())
		if err != nil {
			log.Fatal().Err(err).Str("button", b.name).Msg("button setup")
		}
		go btn.Watch(ctx)
		*b.dst = btn
	}

	// Servo bank.
	bus, err := i2creg.Open(cfg.Servo.I2CBus)
	if err != nil {
		log.Fatal().Err(err).Msg("i2c open")
	}
	cal := make([]actuator.DotCalibration, len(cfg.Servo.Dots))
	for i, d := range cfg.Servo.Dots {
		cal[i] = actuator.DotCalibration{
			Channel:    d.Channel,
			RaisedDeg:  d.RaisedDeg,
			LoweredDeg: d.LoweredDeg,
		}
	}
	bank, err := actuator.NewServoBank(bus, cfg.Servo.I2CAddr,
		physic.Frequency(cfg.Servo.PwmFreqHz)*physic.Hertz, cal)
	if err != nil {
		log.Fatal().Err(err).Msg("servo bank setup")
	}
	var channels [braille.NumDots]actuator.Channel
	for n := 1; n <= braille.NumDots; n++ {
		channels[n-1] = bank.Channel(n)
	}

	// Audio module. Failure here is fatal in the strongest sense: a tutor
	// with no voice is useless, so halt in place rather than run half-alive.
	player, err := audio.Open(cfg.Audio.Port, cfg.Audio.Baud)
	if err != nil {
		log.Error().Err(err).Str("port", cfg.Audio.Port).
			Msg("audio module failed to initialize; halting (power-cycle after fixing the hardware)")
		haltForever()
	}

	return channels, player, pair
}

// buildSim substitutes in-memory fakes so the loop can run on a dev machine.
// SIGUSR1 acts as the NEXT button, SIGUSR2 as PREV.
func buildSim(ctx context.Context) ([braille.NumDots]actuator.Channel, audio.Player, tutor.Inputs) {
	bank := fake.NewBank()
	var channels [braille.NumDots]actuator.Channel
	for n := 1; n <= braille.NumDots; n++ {
		channels[n-1] = bank.Channel(n)
	}

	presses := &simInputs{pair: input.Pair{
		Next: input.NewSoftButton("next", 0),
		Prev: input.NewSoftButton("prev", 0),
	}}
	go presses.watch(ctx)

	log.Info().Msg("simulation mode: kill -USR1 = next, -USR2 = prev")
	return channels, fake.NewAudio(), presses
}

type simInputs struct {
	pair input.Pair
}

func (s *simInputs) watch(ctx context.Context) {
	sig := make(chan os.Signal, 2)
	signal.Notify(sig, syscall.SIGUSR1, syscall.SIGUSR2)
	for {
		select {
		case <-ctx.Done():
			return
		case v := <-sig:
			if v == syscall.SIGUSR1 {
				s.pair.Next.Trigger(time.Now())
			} else {
				s.pair.Prev.Trigger(time.Now())
			}
		}
	}
}

func (s *simInputs) Consume() (bool, bool) {
	return s.pair.Consume()
}

func trapSignals(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	log.Info().Str("signal", sig.String()).Msg("aborting")
	cancel()
}

// haltForever is the fatal-fault terminal state: the process stays up (so
// the diagnostic log's last line stays visible on the console) but nothing
// will ever run again.
func haltForever() {
	for {
		time.Sleep(time.Hour)
	}
}
