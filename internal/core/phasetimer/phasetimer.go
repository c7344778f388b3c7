package phasetimer

import (
	"log"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// PhaseTimer is a state machine that alternates work sessions with short and
// long breaks. All state is guarded by a single mutex; every entry point
// holds it for its full duration.
type PhaseTimer struct {
	mu sync.Mutex

	source   ConfigSource
	clock    Clock
	display  Display
	alerter  Alerter
	notifier Notifier

	config            model.TimerConfig
	phase             Phase
	runState          RunState
	remaining         int
	shortBreaksDone   int
	sessionsCompleted int

	epoch        uint64
	subscription Subscription
	events       []chan Event
}

// Snapshot is a consistent view of the timer state.
type Snapshot struct {
	Phase             Phase
	RunState          RunState
	RemainingSeconds  int
	ShortBreaksDone   int
	SessionsCompleted int
	Config            model.TimerConfig
}

// Running reports whether a countdown is active or paused.
func (snapshot Snapshot) Running() bool {
	return snapshot.RunState != RunIdle
}

// Paused reports whether ticks are currently suppressed.
func (snapshot Snapshot) Paused() bool {
	return snapshot.RunState == RunPaused
}

// New creates an idle PhaseTimer in the work phase.
func New(options Options) *PhaseTimer {
	if options.Config == nil {
		options.Config = StaticConfig(model.DefaultTimerConfig())
	}
	if options.Clock == nil {
		options.Clock = NewTickerClock(time.Second)
	}
	if options.Display == nil {
		options.Display = nopDisplay{}
	}

	timer := &PhaseTimer{
		source:   options.Config,
		clock:    options.Clock,
		display:  options.Display,
		alerter:  options.Alerter,
		notifier: options.Notifier,
		config:   model.DefaultTimerConfig(),
		phase:    PhaseWork,
		runState: RunIdle,
	}
	if config := timer.source.Config(); config.Validate() == nil {
		timer.config = config
	}
	timer.remaining = timer.durationForLocked(PhaseWork)
	return timer
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than blocking the timer.
func (timer *PhaseTimer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Snapshot returns the current state.
func (timer *PhaseTimer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return Snapshot{
		Phase:             timer.phase,
		RunState:          timer.runState,
		RemainingSeconds:  timer.remaining,
		ShortBreaksDone:   timer.shortBreaksDone,
		SessionsCompleted: timer.sessionsCompleted,
		Config:            timer.config,
	}
}

// Start begins a work session. It is a no-op while a countdown is active or
// paused. An invalid configuration leaves the timer idle.
func (timer *PhaseTimer) Start() error {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.runState != RunIdle {
		return nil
	}

	config := timer.source.Config()
	if err := config.Validate(); err != nil {
		return err
	}
	timer.config = config

	timer.phase = PhaseWork
	timer.remaining = timer.durationForLocked(PhaseWork)
	timer.runState = RunRunning
	timer.epoch++

	timer.display.SetCountdownText(FormatTime(timer.remaining))
	timer.display.SetDisplayColor(ColorWork)
	timer.display.SetStatusText(StatusSession)

	epoch := timer.epoch
	timer.subscription = timer.clock.Start(func() {
		timer.tick(epoch)
	})

	timer.emitLocked(EventPhaseChange, "")
	return nil
}

// TogglePause flips between running and paused. An idle timer stays idle.
func (timer *PhaseTimer) TogglePause() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	switch timer.runState {
	case RunRunning:
		timer.runState = RunPaused
	case RunPaused:
		timer.runState = RunRunning
	default:
		return
	}
	timer.emitLocked(EventPhaseChange, "")
}

// Reset stops the countdown and returns to the idle work phase with zeroed
// statistics. Ticks already in flight are discarded.
func (timer *PhaseTimer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.subscription != nil {
		timer.subscription.Stop()
		timer.subscription = nil
	}
	timer.epoch++

	timer.refreshConfigLocked()
	timer.runState = RunIdle
	timer.phase = PhaseWork
	timer.shortBreaksDone = 0
	timer.sessionsCompleted = 0
	timer.remaining = timer.durationForLocked(PhaseWork)

	timer.display.SetCountdownText(FormatTime(timer.remaining))
	timer.display.SetDisplayColor(ColorWork)
	timer.display.SetStatusText(StatusSession)
	timer.display.SetMinutesUntilLongBreak(timer.minutesUntilLongBreakLocked())
	timer.display.SetSessionsCompleted(0)

	timer.emitLocked(EventReset, "")
}

// Close stops the clock and closes all observer channels.
func (timer *PhaseTimer) Close() {
	timer.mu.Lock()
	if timer.subscription != nil {
		timer.subscription.Stop()
		timer.subscription = nil
	}
	timer.epoch++
	timer.runState = RunIdle
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *PhaseTimer) tick(epoch uint64) {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if epoch != timer.epoch || timer.runState != RunRunning {
		return
	}
	if timer.remaining > 0 {
		timer.remaining--
	}

	timer.display.SetCountdownText(FormatTime(timer.remaining))
	if timer.phase == PhaseWork {
		timer.display.SetMinutesUntilLongBreak(timer.minutesUntilLongBreakLocked())
	}

	if timer.remaining > 0 {
		timer.emitLocked(EventTick, "")
		return
	}

	message := MessageWork
	if timer.phase == PhaseWork {
		message = MessageBreak
	}
	timer.playAlertLocked()
	timer.notifyLocked(message)
	timer.transitionLocked()
}

func (timer *PhaseTimer) transitionLocked() {
	timer.refreshConfigLocked()

	next := PhaseWork
	if timer.phase == PhaseWork {
		timer.sessionsCompleted++
		timer.shortBreaksDone++
		if timer.shortBreaksDone >= timer.config.BreaksBeforeLongBreak {
			next = PhaseLongBreak
			timer.shortBreaksDone = 0
		} else {
			next = PhaseShortBreak
		}
	}

	timer.phase = next
	timer.remaining = timer.durationForLocked(next)

	timer.display.SetCountdownText(FormatTime(timer.remaining))
	timer.display.SetStatusText(StatusText(next))
	timer.display.SetDisplayColor(ColorFor(next))
	timer.display.SetSessionsCompleted(timer.sessionsCompleted)
	if next == PhaseWork {
		timer.display.SetMinutesUntilLongBreak(timer.minutesUntilLongBreakLocked())
	}

	timer.emitLocked(EventPhaseChange, "")
}

// refreshConfigLocked re-reads the config source, keeping the last valid
// config when the new one is rejected.
func (timer *PhaseTimer) refreshConfigLocked() {
	config := timer.source.Config()
	if err := config.Validate(); err != nil {
		log.Printf("phase timer: %v; keeping previous configuration", err)
		timer.emitLocked(EventConfigError, err.Error())
		return
	}
	timer.config = config
}

func (timer *PhaseTimer) durationForLocked(phase Phase) int {
	if timer.config.Debug {
		return DebugPhaseSeconds
	}
	switch phase {
	case PhaseShortBreak:
		return timer.config.ShortBreakMinutes * 60
	case PhaseLongBreak:
		return timer.config.LongBreakMinutes * 60
	default:
		return timer.config.SessionMinutes * 60
	}
}

func (timer *PhaseTimer) minutesUntilLongBreakLocked() int {
	return MinutesUntilLongBreak(
		timer.config.SessionMinutes,
		timer.config.ShortBreakMinutes,
		timer.config.BreaksBeforeLongBreak,
		timer.shortBreaksDone,
		timer.remaining,
	)
}

func (timer *PhaseTimer) playAlertLocked() {
	if timer.alerter == nil {
		return
	}
	if err := timer.alerter.PlayAlert(); err != nil {
		log.Printf("play alert: %v", err)
	}
}

func (timer *PhaseTimer) notifyLocked(message string) {
	if timer.notifier == nil {
		return
	}
	if err := timer.notifier.Notify(message); err != nil {
		log.Printf("notify: %v", err)
	}
}

func (timer *PhaseTimer) emitLocked(eventType EventType, message string) {
	event := Event{
		Type:              eventType,
		Phase:             timer.phase,
		RunState:          timer.runState,
		Remaining:         time.Duration(timer.remaining) * time.Second,
		SessionsCompleted: timer.sessionsCompleted,
		Message:           message,
		At:                time.Now(),
	}
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
