/*Package ansi encodes ANSI/VT100/ECMA-48 terminal control sequences,
focusing on cursor movement, screen and line erasure, scrolling, and text
styling through SGR (Select Graphic Rendition).

Every function in this package is a pure encoder: it returns a complete
escape sequence string and performs no terminal I/O. Writing the produced
sequences to a terminal, and deciding whether the terminal supports them,
are the caller's concern.

*/
package ansi
