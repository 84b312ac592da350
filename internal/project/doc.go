// Package project executes packaged agent projects. A project is a directory
// with a project-run descriptor (project.yaml) declaring named entry point
// commands; Run launches one of them as a subprocess with the project
// directory as working directory. A directory without a descriptor can still
// be run by pointing Run at an entry file, which is executed with `go run`.
package project
