// This file is part of Tapedeck.
//
// Tapedeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapedeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapedeck.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mholtby/tapedeck/curated"
	"github.com/mholtby/tapedeck/interpreter"
)

// Check is a very rough and ready calculation of the interpreter's
// performance. The supplied program is evaluated over and over for the
// specified period of time and the aggregate step count reported.
func Check(output io.Writer, profileCPU bool, profileMem bool, programFile string, runTime string) error {
	src, err := os.ReadFile(programFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// all machine output is discarded. the measurement is of the dispatch
	// loop, not of the terminal
	mach, err := interpreter.NewMachine(interpreter.Config{
		FromFile:  true,
		RawOutput: true,
	}, noInput{}, io.Discard)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the machine polls this channel between steps. when the duration
	// expires the current Evaluate() call unwinds with a UserInterrupt
	timesUp := make(chan os.Signal, 1)
	mach.SetInterrupt(timesUp)
	time.AfterFunc(duration, func() {
		timesUp <- os.Interrupt
	})

	steps := 0

	runner := func() error {
		for {
			n, err := mach.Evaluate(string(src))
			steps += n
			if err != nil {
				if curated.Is(err, interpreter.UserInterrupt) {
					return nil
				}
				return err
			}

			// a program that executes no steps never polls the interrupt
			// channel. without this check the loop would spin until the
			// heat death of the universe
			if n == 0 {
				return curated.Errorf("performance: nothing to measure (%s has no instructions)", programFile)
			}
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	if profileCPU {
		err = ProfileCPU("cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	sec := duration.Seconds()
	fmt.Fprintf(output, "%.0f steps per second (%d steps in %.2f seconds)\n", float64(steps)/sec, steps, sec)

	if profileMem {
		if err := ProfileMem("mem.profile"); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}

// the measured program must not use the , instruction. rather than blocking
// forever the read fails immediately.
type noInput struct{}

func (noInput) Read(_ []byte) (int, error) {
	return 0, io.EOF
}
