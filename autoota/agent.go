/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/OSSystems/pkg/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/OSSystems/autoota/client"
	"github.com/OSSystems/autoota/flash"
	"github.com/OSSystems/autoota/indicator"
	"github.com/OSSystems/autoota/utils"
)

const (
	// connectivityBackoff is how long the poll loop waits before
	// looking at the network again after finding it down.
	connectivityBackoff = 10 * time.Second

	// successHold gives observers time to react to the complete
	// notification before the device restarts.
	successHold = time.Second

	// progressStep is how many written bytes go by between progress
	// notifications.
	progressStep = 10 * 1024

	maxErrorLen = 128
)

// Controller abstracts the procedures triggered by the state machine
type Controller interface {
	ProbeVersion() (string, error)
	FetchAndInstall(cancel <-chan bool, progressChan chan<- int) error
}

type Agent struct {
	Controller

	Version   string
	BuildTime string

	Settings         *Settings
	Store            afero.Fs
	Updater          client.VersionFetcher
	Downloader       client.FirmwareDownloader
	Flash            flash.Writer
	Identity         DeviceIdentity
	Rebooter         utils.Rebooter
	Indicator        indicator.Indicator
	Clock            Clock
	Rand             Rand
	Connectivity     ConnectivityChecker
	Callbacks        *CallbackSet
	DefaultApiClient *client.ApiClient

	retry retryPolicy

	fingerprintOnce sync.Once
	fingerprintHash uint32
	fingerprintErr  error

	running    atomic.Bool
	forceCheck atomic.Bool
	lastCheck  atomic.Int64 // unix nanoseconds

	lastErrorMutex sync.Mutex
	lastError      string

	state         State
	previousState State
	stateMutex    sync.Mutex

	daemon *Daemon
	done   chan struct{}
}

func NewAgent(gitversion string, buildTime string, fs afero.Fs, settings *Settings) *Agent {
	a := &Agent{
		Version:          gitversion,
		BuildTime:        buildTime,
		Settings:         settings,
		Store:            fs,
		Updater:          client.NewVersionClient(),
		Downloader:       client.NewFirmwareClient(),
		Identity:         &HardwareIdentity{},
		Rebooter:         &utils.RebooterImpl{},
		Indicator:        indicator.Null{},
		Clock:            SystemClock{},
		Rand:             SystemRand{},
		Connectivity:     NetConnectivity{},
		Callbacks:        NewCallbackSet(),
		DefaultApiClient: client.NewApiClient(),
		state:            NewIdleState(),
	}

	a.Controller = a

	return a
}

// Begin validates the configuration and starts the background task. It
// fails when the agent is already running, when the URLs are unset or
// when there is no network connectivity. Configuration must not be
// changed after a successful Begin.
func (a *Agent) Begin() error {
	if !a.running.CompareAndSwap(false, true) {
		return errors.New("agent is already running")
	}

	if err := a.beginChecks(); err != nil {
		a.running.Store(false)
		return err
	}

	a.lastCheck.Store(a.Clock.Now().UnixNano())
	a.SetState(NewIdleState())

	a.daemon = NewDaemon(a)
	a.done = make(chan struct{})

	log.Info("starting update monitoring")

	go func() {
		defer close(a.done)
		defer a.running.Store(false)

		a.daemon.Run()
	}()

	return nil
}

func (a *Agent) beginChecks() error {
	if err := a.Settings.Validate(); err != nil {
		return err
	}

	if a.Settings.FirmwareURL == "" || a.Settings.VersionURL == "" {
		return errors.New("firmware or version URL not set")
	}

	if a.Flash == nil {
		return errors.New("flash write target not set")
	}

	if !a.Connectivity.Connected() {
		return errors.New("network is not connected")
	}

	return nil
}

// Stop terminates the background task cooperatively: the current state
// is cancelled at its next wait point or chunk boundary, so a
// flash-write in progress is abandoned cleanly, never torn mid-chunk.
func (a *Agent) Stop() {
	if !a.running.Load() {
		return
	}

	a.daemon.Stop()
	a.Cancel(NewExitState(0))

	<-a.done

	log.Info("agent stopped")
}

func (a *Agent) IsRunning() bool {
	return a.running.Load()
}

// ForceCheck requests a version check on the next scheduler iteration.
// It only sets a flag; it never blocks and never performs the check
// itself.
func (a *Agent) ForceCheck() {
	a.forceCheck.Store(true)
	log.Debug("force check requested")
}

func (a *Agent) consumeForceCheck() bool {
	return a.forceCheck.Swap(false)
}

func (a *Agent) GetCurrentVersion() string {
	return a.Settings.CurrentVersion
}

func (a *Agent) GetLastCheckTime() time.Time {
	return time.Unix(0, a.lastCheck.Load())
}

func (a *Agent) setLastCheck(t time.Time) {
	a.lastCheck.Store(t.UnixNano())
}

func (a *Agent) elapsedSinceLastCheck() time.Duration {
	return a.Clock.Now().Sub(a.GetLastCheckTime())
}

func (a *Agent) GetLastError() string {
	a.lastErrorMutex.Lock()
	defer a.lastErrorMutex.Unlock()

	return a.lastError
}

// Retries returns the current count of consecutive failed checks.
func (a *Agent) Retries() int {
	return a.retry.retries()
}

// setError records a bounded last-error message and dispatches it to
// the error callback.
func (a *Agent) setError(message string) {
	if len(message) > maxErrorLen {
		message = message[:maxErrorLen]
	}

	a.lastErrorMutex.Lock()
	a.lastError = message
	a.lastErrorMutex.Unlock()

	log.Error(message)

	a.Callbacks.emitError(message)
}

// FingerprintHash computes the rollout bucketing hash once and caches
// it for the process lifetime.
func (a *Agent) FingerprintHash() (uint32, error) {
	a.fingerprintOnce.Do(func() {
		fingerprint, err := a.Identity.Fingerprint()
		if err != nil {
			a.fingerprintErr = err
			return
		}

		a.fingerprintHash = HashFingerprint(fingerprint)
	})

	return a.fingerprintHash, a.fingerprintErr
}

func (a *Agent) Cancel(nextState State) {
	a.GetState().Cancel(true, nextState)
}

func (a *Agent) GetState() State {
	a.stateMutex.Lock()
	defer a.stateMutex.Unlock()

	return a.state
}

func (a *Agent) SetState(state State) {
	a.stateMutex.Lock()
	defer a.stateMutex.Unlock()

	a.previousState = a.state
	a.state = state
}

func (a *Agent) ProcessCurrentState() State {
	state := a.GetState()

	log.Debug("handling state: ", StateToString(state.ID()))

	nextState, _ := state.Handle(a)

	return nextState
}

// ProbeVersion fetches the remote version string with cache-defeating
// headers.
func (a *Agent) ProbeVersion() (string, error) {
	return a.Updater.FetchVersion(a.DefaultApiClient.Request(), a.Settings.VersionURL)
}

// FetchAndInstall drives the download-and-flash sequence. On success
// it returns nil and the caller proceeds to restart the device; every
// failure path records a last-error message and emits the error
// notification before returning.
func (a *Agent) FetchAndInstall(cancel <-chan bool, progressChan chan<- int) error {
	a.Callbacks.emitStart()
	a.blink(3, 100*time.Millisecond)

	rd, total, err := a.Downloader.DownloadFirmware(a.DefaultApiClient.Request(), a.Settings.FirmwareURL)
	if err != nil {
		a.setError(err.Error())
		return err
	}
	defer rd.Close()

	if total <= 0 {
		err := errors.New("content length is zero")
		a.setError(err.Error())
		return err
	}

	log.Info(fmt.Sprintf("firmware size: %d bytes", total))

	if !a.Flash.Begin(total) {
		err := errors.New("not enough space for OTA")
		a.setError(err.Error())
		return err
	}

	log.Info("writing firmware to flash")

	var lastProgress int64

	written, cancelled, err := utils.Copy(a.Flash, rd, total, cancel, func(written int64) {
		a.Indicator.Toggle()

		if written-lastProgress >= progressStep || written == total {
			lastProgress = written

			a.Callbacks.emitProgress(written, total)

			// "non-blocking" write to channel
			select {
			case progressChan <- int(written * 100 / total):
			default:
			}
		}
	})

	a.Indicator.Set(false)

	if cancelled {
		log.Info("update cancelled, abandoning staged image")
		return nil
	}

	if err != nil {
		a.setError(err.Error())
		return err
	}

	log.Info(fmt.Sprintf("wrote %d bytes", written))

	if !a.Flash.End() {
		err := errors.Errorf("update failed: error %d", a.Flash.GetError())
		a.setError(err.Error())
		return err
	}

	if !a.Flash.IsFinished() {
		err := errors.New("update not finished")
		a.setError(err.Error())
		return err
	}

	a.Callbacks.emitComplete()
	a.blink(5, 200*time.Millisecond)

	<-a.Clock.After(successHold)

	return nil
}

func (a *Agent) blink(times int, interval time.Duration) {
	for i := 0; i < times; i++ {
		a.Indicator.Set(true)
		<-a.Clock.After(interval)
		a.Indicator.Set(false)
		<-a.Clock.After(interval)
	}
}
