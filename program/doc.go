// Package program loads processor memory images from text and lists them.
//
// Program text is a sequence of integer words separated by commas or
// whitespace, as in "1101,4,5,6,99". On top of plain integers the loader
// accepts:
//
//   - comments, from ';' or '#' to the end of the line
//   - labels, "name:", bound to the address of the next word
//   - equates, ".equ NAME value", one per line
//   - compile-time expressions, "$(ADD + P0 + P1)", evaluated with Starlark
//     over the equates and labels
//
// Opcode names (ADD, MUL, STORE, SHOW, JT, JF, LT, EQ, HALT) and the
// immediate mode multipliers P0, P1 and P2 are predefined.
package program
