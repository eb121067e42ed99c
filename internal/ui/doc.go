// Package ui contains the Bubble Tea program that powers the launcher menu.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and command execution.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, mouse events,
//     window resizes, command completion).
//   - Key presses translate to abstract commands (internal/ui/keymap.go)
//     before they reach the navigation helpers, so the binding table and the
//     menu engine can be tested apart.
//   - Navigation helpers (internal/ui/navigation.go) move the cursor over the
//     projected row list, fold and unfold categories, and relocate the cursor
//     to a visible ancestor when a collapse hides it. Filter helpers
//     (internal/ui/filter.go) keep the fuzzy-search overlay isolated from the
//     tree state it searches.
//
// State ownership:
//   - The menu tree and its visible-row projection come from internal/menu;
//     the tree's shape is fixed for the session, only expansion flags change.
//   - Cursor identity and the scroll window live in internal/ui/state.Nav,
//     which stores the cursor as a node ID so structural changes to the
//     visible rows never leave it dangling.
//
// Command execution:
//   - Selecting a command suspends the interface via tea.Exec, which restores
//     the terminal, runs the entry through the shell, and reacquires the
//     terminal in one paired cycle. The completion message flows back through
//     the handler registry to resume browsing with cursor and expansion state
//     intact.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (navigation, filtering, rendering, execution) without
// needing to reason about the entire TUI at once.
package ui
