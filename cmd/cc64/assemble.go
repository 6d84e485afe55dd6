/*
File    : cc64/cmd/cc64/assemble.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// assembleAndLink is the optional convenience layered on top of
// printing assembly text to stdout: it writes asm to a temp .s file,
// shells out to the system assembler and linker (cc as a driver,
// which does both in one step) to produce a native binary at outPath,
// and uses golang.org/x/sys/unix to confirm the result actually
// carries the executable bit before reporting success. Neither step
// is reached unless the driver's -assemble flag was passed; printing
// assembly never depends on this function succeeding, or even being
// callable, on the host.
func assembleAndLink(asm string, outPath string) error {
	tmp, err := os.CreateTemp("", "cc64-*.s")
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(asm); err != nil {
		tmp.Close()
		return fmt.Errorf("assemble: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	cmd := exec.Command("cc", "-o", outPath, tmp.Name())
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("assemble: cc failed: %w", err)
	}

	return checkExecutable(outPath)
}

// checkExecutable stats outPath via unix.Stat and reports an error if
// none of the owner/group/other executable bits are set, confirming
// the linker actually produced something runnable before the driver
// claims success.
func checkExecutable(outPath string) error {
	var st unix.Stat_t
	if err := unix.Stat(outPath, &st); err != nil {
		return fmt.Errorf("assemble: stat %s: %w", outPath, err)
	}
	const anyExecBit = 0o111
	if st.Mode&anyExecBit == 0 {
		return fmt.Errorf("assemble: %s was produced but is not executable (mode %o)", outPath, st.Mode)
	}
	return nil
}
