package ast

import (
	"mua/internal/source"
)

// File is a translation unit: one parsed source file owning an ordered
// sequence of function declarations.
type File struct {
	Span   source.Span
	Source source.FileID
	Funcs  []DeclID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(src source.FileID, sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:   sp,
		Source: src,
		Funcs:  make([]DeclID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
