package template

import (
	"html/template"
	"io/fs"
	"path"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	viewsDir    = "views"
	layoutsDir  = "layouts"
	partialsDir = "partials"
	ext         = ".html"
)

// Context is the value handed to views. It must know the request it
// renders for.
type Context interface {
	GetGinContext() *gin.Context
}

// Manager collects views registered by handlers and compiles them into
// the multitemplate renderer on Init.
type Manager[T Context] struct {
	re       multitemplate.Renderer
	fs       fs.FS
	funcs    template.FuncMap
	builders []*builder[T]
}

func NewManager[T Context](re multitemplate.Renderer, fsys fs.FS) *Manager[T] {
	return &Manager[T]{
		re:    re,
		fs:    fsys,
		funcs: template.FuncMap{},
	}
}

// WithHelper exposes every exported method of h to templates under its
// name with the first letter lowercased.
func (s *Manager[T]) WithHelper(h any) *Manager[T] {
	v := reflect.ValueOf(h)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		s.funcs[lowerFirst(m.Name)] = v.Method(i).Interface()
	}
	return s
}

func (s *Manager[T]) MustRegisterViews(pattern string) Builder[T] {
	b, err := s.RegisterViews(pattern)
	if err != nil {
		panic(err)
	}
	return b
}

func (s *Manager[T]) RegisterViews(pattern string) (Builder[T], error) {
	files, err := fs.Glob(s.fs, path.Join(viewsDir, pattern+ext))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to glob views %v", pattern)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no views found for %v", pattern)
	}
	b := &builder[T]{
		files: files,
	}
	s.builders = append(s.builders, b)
	return b, nil
}

// Init parses every registered view together with its layout and all
// partials.
func (s *Manager[T]) Init() error {
	partials, err := s.readAll(path.Join(partialsDir, "*"+ext))
	if err != nil {
		return err
	}
	for _, b := range s.builders {
		var layout []string
		if b.layout != "" {
			l, err := s.read(path.Join(layoutsDir, b.layout+ext))
			if err != nil {
				return err
			}
			layout = append(layout, l)
		}
		for _, f := range b.files {
			v, err := s.read(f)
			if err != nil {
				return err
			}
			name := viewName(f)
			tpls := make([]string, 0, len(layout)+len(partials)+1)
			tpls = append(tpls, layout...)
			tpls = append(tpls, partials...)
			tpls = append(tpls, v)
			if err := s.add(name, tpls); err != nil {
				return errors.Wrapf(err, "failed to parse view %v", name)
			}
		}
	}
	return nil
}

func (s *Manager[T]) add(name string, tpls []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()
	s.re.AddFromStringsFuncs(name, s.funcs, tpls...)
	return
}

func (s *Manager[T]) read(name string) (string, error) {
	b, err := fs.ReadFile(s.fs, name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read template %v", name)
	}
	return string(b), nil
}

func (s *Manager[T]) readAll(pattern string) ([]string, error) {
	files, err := fs.Glob(s.fs, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to glob %v", pattern)
	}
	res := make([]string, 0, len(files))
	for _, f := range files {
		c, err := s.read(f)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

type Builder[T Context] interface {
	WithLayout(name string) Builder[T]
	Build(name string) Renderer[T]
}

type Renderer[T Context] interface {
	HTML(code int, ctx T)
}

type builder[T Context] struct {
	files  []string
	layout string
}

func (s *builder[T]) WithLayout(name string) Builder[T] {
	s.layout = name
	return s
}

func (s *builder[T]) Build(name string) Renderer[T] {
	return &view[T]{name: name}
}

type view[T Context] struct {
	name string
}

func (s *view[T]) HTML(code int, ctx T) {
	ctx.GetGinContext().HTML(code, s.name, ctx)
}

func viewName(f string) string {
	return strings.TrimSuffix(strings.TrimPrefix(f, viewsDir+"/"), ext)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
