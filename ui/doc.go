// Package ui renders interactive prompts to a terminal.
//
// Frames
//
// A prompt is drawn as a sequence of frames. Every frame starts with
// FrameSetup, which erases the previous frame, and ends with FrameFinish,
// which places the cursor in the input line and flushes the output. Between
// the two the prompt renders its full state with the Render methods.
//
// Positions
//
// The Backend does not read the cursor position back from the terminal.
// Instead it replays the plain text of the frame through TrackPosition to
// find where the text ended and where the input cursor is, taking soft
// wrapping and wide glyphs into account.
//
// Configuration
//
// Glyphs and styles come from a RenderConfig. The process-wide configuration
// is read with Configuration and replaced with SetConfiguration. A Backend
// keeps the configuration it was created with.
package ui
