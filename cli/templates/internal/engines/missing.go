package engines

import (
	"slices"
	"strings"
	"text/template/parse"
)

type fieldUse int

const (
	usePrint fieldUse = 1 << iota
	useRange
)

// fieldCollector records context paths referenced while dot is the root context,
// together with the way they are used. Paths are dot-joined field chains: "cfg.name".
type fieldCollector struct {
	trees   map[string]*parse.Tree
	visited map[string]bool
	fields  map[string]fieldUse
}

func newFieldCollector(trees map[string]*parse.Tree) *fieldCollector {
	return &fieldCollector{
		trees:   trees,
		visited: make(map[string]bool),
		fields:  make(map[string]fieldUse),
	}
}

// collectTree walks the named template executed with the root context as dot.
func (collector *fieldCollector) collectTree(name string) {
	tree := collector.trees[name]
	if tree == nil || collector.visited[name] {
		return
	}
	collector.visited[name] = true
	collector.collectNode(tree.Root, true)
}

func (collector *fieldCollector) collectNode(node parse.Node, rootDot bool) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			collector.collectNode(child, rootDot)
		}
	case *parse.ActionNode:
		collector.collectPipe(n.Pipe, rootDot, usePrint)
	case *parse.IfNode:
		collector.collectPipe(n.Pipe, rootDot, usePrint)
		collector.collectNode(n.List, rootDot)
		collector.collectNode(n.ElseList, rootDot)
	case *parse.RangeNode:
		collector.collectPipe(n.Pipe, rootDot, useRange)
		// Dot is the element inside the loop body.
		collector.collectNode(n.List, false)
		collector.collectNode(n.ElseList, rootDot)
	case *parse.WithNode:
		collector.collectPipe(n.Pipe, rootDot, usePrint)
		collector.collectNode(n.List, false)
		collector.collectNode(n.ElseList, rootDot)
	case *parse.TemplateNode:
		collector.collectPipe(n.Pipe, rootDot, usePrint)
		if passesRoot(n.Pipe, rootDot) {
			collector.collectTree(n.Name)
		}
	}
}

// passesRoot returns true if the pipeline evaluates to the root context: "." at the
// root level or "$" anywhere.
func passesRoot(pipe *parse.PipeNode, rootDot bool) bool {
	if pipe == nil || len(pipe.Cmds) != 1 || len(pipe.Cmds[0].Args) != 1 {
		return false
	}
	switch arg := pipe.Cmds[0].Args[0].(type) {
	case *parse.DotNode:
		return rootDot
	case *parse.VariableNode:
		return len(arg.Ident) == 1 && arg.Ident[0] == "$"
	}
	return false
}

func (collector *fieldCollector) collectPipe(pipe *parse.PipeNode, rootDot bool,
	use fieldUse,
) {
	if pipe == nil {
		return
	}
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			collector.collectArg(arg, rootDot, use)
		}
	}
}

func (collector *fieldCollector) collectArg(arg parse.Node, rootDot bool, use fieldUse) {
	switch a := arg.(type) {
	case *parse.FieldNode:
		if rootDot && len(a.Ident) > 0 {
			collector.fields[strings.Join(a.Ident, ".")] |= use
		}
	case *parse.VariableNode:
		// $.name always refers to the root context.
		if len(a.Ident) > 1 && a.Ident[0] == "$" {
			collector.fields[strings.Join(a.Ident[1:], ".")] |= use
		}
	case *parse.PipeNode:
		collector.collectPipe(a, rootDot, use)
	case *parse.ChainNode:
		collector.collectArg(a.Node, rootDot, use)
	}
}

// withMissingFields returns a copy of data where every root key referenced by the
// named template, or by templates it calls with the root context, but absent from data
// is bound to an empty value: an empty sequence for keys iterated with range, an empty
// map for keys with nested references, an empty string otherwise.
func withMissingFields(name string, trees map[string]*parse.Tree,
	data map[string]any,
) map[string]any {
	collector := newFieldCollector(trees)
	collector.collectTree(name)

	result := make(map[string]any, len(data)+len(collector.fields))
	for key, value := range data {
		result[key] = value
	}

	paths := make([]string, 0, len(collector.fields))
	for fieldPath := range collector.fields {
		root, _, _ := strings.Cut(fieldPath, ".")
		if _, found := data[root]; !found {
			paths = append(paths, fieldPath)
		}
	}
	slices.Sort(paths)
	for _, fieldPath := range paths {
		seedPath(result, strings.Split(fieldPath, "."), collector.fields[fieldPath])
	}
	return result
}

// seedPath binds an empty value at the end of the field chain, creating intermediate
// maps. Seeded leaves standing where a map is needed are replaced.
func seedPath(data map[string]any, idents []string, use fieldUse) {
	current := data
	for _, ident := range idents[:len(idents)-1] {
		next, ok := current[ident].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[ident] = next
		}
		current = next
	}

	leaf := idents[len(idents)-1]
	if _, found := current[leaf]; found {
		return
	}
	if use&useRange != 0 {
		current[leaf] = []string{}
	} else {
		current[leaf] = ""
	}
}
