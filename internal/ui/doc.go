// Package ui provides the components of the bot console TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│   Sidebar       │   Chat or Settings panel          │
//	│   (1/3 width)   │   (remaining width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// All size calculations go through the ViewContext singleton.
//
// # Components
//
// Header shows the title over a gradient and highlights the active view.
//
// Footer shows key bindings for the current view and tab, or a flash
// message that clears itself after FlashDuration.
//
// Sidebar shows the polled usage counters and static bot info. A failed
// poll keeps the last counters and flips the status line.
//
// Chat is the simulator: a viewport of message bubbles above a textarea.
// It counts pending replies and animates the typing indicator while any
// are outstanding.
//
// Settings has three tabs: typing delay, image triggers and voice
// triggers. It only navigates; the app issues backend calls.
//
// Modal is a container for the states in the modals subpackage.
package ui
