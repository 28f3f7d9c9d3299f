package model

// Path represents a file system path.
type Path string

// File is a module document on disk together with its content hash.
type File struct {
	Path Path
	Hash string
}

// Source is one module document selected for analysis.
type Source struct {
	Origin *File
	// Module is the module name declared in the document, empty until it is decoded.
	Module string
}
