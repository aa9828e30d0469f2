package locate

import "github.com/yaklabco/ngpatch/pkg/srcast"

// DecoratorMetadata returns the object literal passed as first argument to
// every `@name({...})` decorator in the file.
//
// A bare `@name` matches when name is imported from modulePath, and also
// when the file never binds name at all, so modules that rely on an ambient
// declaration are still found. It does not match when name is imported from
// another module or declared in the file. Aliased imports
// (`import { NgModule as M }`) and namespace imports (`@core.NgModule(...)`)
// of modulePath are recognised.
func DecoratorMetadata(file *srcast.SourceFile, name, modulePath string) []*srcast.Node {
	if file == nil {
		return nil
	}

	locals := make(map[string]bool)
	namespaces := make(map[string]bool)
	bound := declaredInFile(file, name)
	for _, decl := range ImportDeclarations(file) {
		fromModule := decl.ModulePath == modulePath
		switch {
		case decl.Namespace == "":
		case fromModule:
			namespaces[decl.Namespace] = true
		case decl.Namespace == name:
			bound = true
		}
		for _, binding := range decl.Bindings {
			switch {
			case fromModule && binding.Imported == name:
				locals[binding.Local] = true
			case binding.Local == name:
				bound = true
			}
		}
	}
	if !bound {
		locals[name] = true
	}

	var objects []*srcast.Node
	for _, decorator := range FindNodes(file.Root, srcast.KindDecorator, 0) {
		call := decorator.ChildOfKind(srcast.KindCallExpression)
		if call == nil || !calleeMatches(call.ChildByField(srcast.FieldFunction), name, locals, namespaces) {
			continue
		}

		args := call.ChildByField(srcast.FieldArguments)
		if args == nil {
			continue
		}
		named := args.NamedChildren()
		if len(named) > 0 && named[0].Kind == srcast.KindObject {
			objects = append(objects, named[0])
		}
	}
	return objects
}

func calleeMatches(callee *srcast.Node, name string, locals, namespaces map[string]bool) bool {
	switch {
	case callee == nil:
		return false
	case callee.Kind == srcast.KindIdentifier:
		return locals[callee.Text()]
	case callee.Kind == srcast.KindMemberExpression:
		object := callee.ChildByField(srcast.FieldObject)
		property := callee.ChildByField(srcast.FieldProperty)
		return object != nil && property != nil &&
			object.Kind == srcast.KindIdentifier &&
			namespaces[object.Text()] && property.Text() == name
	default:
		return false
	}
}

// declaredInFile reports whether a class, function or variable called name
// is declared anywhere in the file.
func declaredInFile(file *srcast.SourceFile, name string) bool {
	found := srcast.FindFirst(file.Root, func(n *srcast.Node) bool {
		switch n.Kind {
		case srcast.KindClassDeclaration, srcast.KindFunctionDeclaration, srcast.KindVariableDeclarator:
			return n.ChildByField(srcast.FieldName).Text() == name
		default:
			return false
		}
	})
	return found != nil
}
