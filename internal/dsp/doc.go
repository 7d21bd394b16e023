// SPDX-License-Identifier: MIT
/*
Package dsp implements the numeric analysis routines behind the voicedsp
boundary: magnitude spectrum computation and YIN pitch estimation.

Both entry points are pure functions over a single sample buffer. They
never retain the input slice, allocate only their result, and report all
failures through an error return. Windowing is applied internally (Hann);
callers cannot select a window function.
*/
package dsp
