// meta/meta.go
package meta

import "trigon/board"

// APP_NAME is the name of the binary.
const APP_NAME = "trigon"

// VERSION of the rules engine.
const VERSION = "0.1.0"

// BOARD_ROWS defines the default number of board rows.
const BOARD_ROWS = board.DefaultRows

// BOARD_COLS defines the default number of board columns.
const BOARD_COLS = board.DefaultCols

// WITH_WINGS adds the standard wing cells to generated boards.
const WITH_WINGS = true

// ALLOW_VERTEX makes corner-sharing cells adjacent on generated boards.
const ALLOW_VERTEX = false
