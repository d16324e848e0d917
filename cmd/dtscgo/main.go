//
// dts - Russian draughts decision tree statistics tool
//
// MIT License
//
// Copyright (c) 2018-2026 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package main is the c-shared build target: a thin //export layer
// around internal/ffi, following draughts_c.h's board_t shape so a C
// or C++ caller sees the same four-uint32 board and the same three
// entry points spec.md names (plus verify_move/generate_item_moves,
// the wrapper.cc entry points this module's FFI supplements them
// with). Build with:
//
//	go build -buildmode=c-shared -o libdts.so ./cmd/dtscgo
package main

/*
#include <stddef.h>

typedef int (*board_callback_t)(unsigned int w_kings, unsigned int w_items,
                                 unsigned int b_kings, unsigned int b_items,
                                 size_t depth);

static int call_board_callback(board_callback_t cb,
                                unsigned int w_kings, unsigned int w_items,
                                unsigned int b_kings, unsigned int b_items,
                                size_t depth) {
	return cb(w_kings, w_items, b_kings, b_items, depth);
}
*/
import "C"

import (
	"unsafe"

	"github.com/frankkopp/dts/internal/ffi"
)

func toFfiBoard(wKings, wItems, bKings, bItems C.uint) ffi.Board {
	return ffi.Board{
		WKings: uint32(wKings),
		WItems: uint32(wItems),
		BKings: uint32(bKings),
		BItems: uint32(bItems),
	}
}

//export get_initial_board
func get_initial_board(wKings, wItems, bKings, bItems *C.uint) {
	b := ffi.GetInitialBoard()
	*wKings = C.uint(b.WKings)
	*wItems = C.uint(b.WItems)
	*bKings = C.uint(b.BKings)
	*bItems = C.uint(b.BItems)
}

//export generate_moves
func generate_moves(outWKings, outWItems, outBKings, outBItems *C.uint, outCap C.int,
	wKings, wItems, bKings, bItems C.uint, isWhiteTurn C.int) C.int {
	b := toFfiBoard(wKings, wItems, bKings, bItems)
	var successors []ffi.Board
	n := ffi.GenerateMoves(&successors, b, isWhiteTurn != 0)
	if n <= 0 {
		return C.int(n)
	}

	limit := int(outCap)
	if limit > len(successors) {
		limit = len(successors)
	}
	wkSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outWKings))[:limit:limit]
	wiSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outWItems))[:limit:limit]
	bkSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outBKings))[:limit:limit]
	biSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outBItems))[:limit:limit]
	for i := 0; i < limit; i++ {
		s := successors[i]
		wkSlice[i] = C.uint(s.WKings)
		wiSlice[i] = C.uint(s.WItems)
		bkSlice[i] = C.uint(s.BKings)
		biSlice[i] = C.uint(s.BItems)
	}
	return C.int(n)
}

//export verify_move
func verify_move(wKings, wItems, bKings, bItems C.uint, isWhiteTurn C.int, from, to C.int) C.int {
	b := toFfiBoard(wKings, wItems, bKings, bItems)
	if ffi.VerifyMove(b, isWhiteTurn != 0, int(from), int(to)) {
		return 1
	}
	return 0
}

//export generate_item_moves
func generate_item_moves(outWKings, outWItems, outBKings, outBItems *C.uint, outCap C.int,
	wKings, wItems, bKings, bItems C.uint, isWhiteTurn C.int, itemIndex C.int) C.int {
	b := toFfiBoard(wKings, wItems, bKings, bItems)
	var successors []ffi.Board
	n := ffi.GenerateItemMoves(&successors, b, isWhiteTurn != 0, int(itemIndex))
	if n <= 0 {
		return C.int(n)
	}

	limit := int(outCap)
	if limit > len(successors) {
		limit = len(successors)
	}
	wkSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outWKings))[:limit:limit]
	wiSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outWItems))[:limit:limit]
	bkSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outBKings))[:limit:limit]
	biSlice := (*[1 << 20]C.uint)(unsafe.Pointer(outBItems))[:limit:limit]
	for i := 0; i < limit; i++ {
		s := successors[i]
		wkSlice[i] = C.uint(s.WKings)
		wiSlice[i] = C.uint(s.WItems)
		bkSlice[i] = C.uint(s.BKings)
		biSlice[i] = C.uint(s.BItems)
	}
	return C.int(n)
}

//export walk_all_moves
func walk_all_moves(wKings, wItems, bKings, bItems C.uint, isWhiteTurn C.int,
	cb C.board_callback_t, maxDepth C.uint) C.int {
	b := toFfiBoard(wKings, wItems, bKings, bItems)
	stopped := ffi.WalkAllMoves(b, isWhiteTurn != 0, func(board ffi.Board, depth int) bool {
		ret := C.call_board_callback(cb,
			C.uint(board.WKings), C.uint(board.WItems),
			C.uint(board.BKings), C.uint(board.BItems),
			C.size_t(depth))
		return ret != 0
	}, int(maxDepth))
	if stopped {
		return 1
	}
	return 0
}

func main() {}
