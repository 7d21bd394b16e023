// SPDX-License-Identifier: MIT
/*
voicedsp is a voice-analysis DSP library with a native C boundary.

Built with -buildmode=c-shared it produces the shared library consumed by
mobile hosts over FFI/JNI; the exported symbols live in bridge.go and
jni.go and main is never called. Built normally it is a small CLI for
offline and live analysis with the same DSP core:

	voicedsp analyze recording.wav
	voicedsp live --listen :8080
	voicedsp version
*/
package main

import (
	"os"

	"voicedsp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
