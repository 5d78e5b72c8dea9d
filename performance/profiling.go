// This file is part of tasgen.
//
// tasgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tasgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tasgen.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/hltas/tasgen/curated"
	"github.com/hltas/tasgen/logger"
)

// names of the files created by RunProfiler()
const (
	CPUProfile = "cpu.profile"
	MemProfile = "mem.profile"
)

// ProfileError is the pattern for all errors returned by RunProfiler().
const ProfileError = "performance: %v"

// RunProfiler runs the function with CPU profiling enabled and writes a heap
// profile once the function has completed. Profile files are written to dir.
// If profile is false the function is run without any profiling.
//
// Errors from the function are returned unchanged.
func RunProfiler(profile bool, dir string, run func() error) error {
	if !profile {
		return run()
	}

	cpuFile := filepath.Join(dir, CPUProfile)
	f, err := os.Create(cpuFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	err = run()
	pprof.StopCPUProfile()
	logger.Logf(logger.Allow, "performance", "cpu profile written to %s", cpuFile)

	if merr := memProfile(filepath.Join(dir, MemProfile)); merr != nil && err == nil {
		return merr
	}

	return err
}

func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, fmt.Errorf("heap profile: %w", err))
	}
	logger.Logf(logger.Allow, "performance", "heap profile written to %s", outFile)

	return nil
}
