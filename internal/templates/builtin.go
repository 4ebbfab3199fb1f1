package templates

import "github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"

// builders 每次调用都构造新对象，调用方可以放心修改返回值。
var builders = map[ProjectType]func() *tsconfig.Object{
	React:   react,
	Node:    node,
	Library: library,
	NextJS:  nextjs,
}

func strs(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

func react() *tsconfig.Object {
	opts := tsconfig.NewObject().
		Set("target", "ES2020").
		Set("lib", strs("ES2020", "DOM", "DOM.Iterable")).
		Set("jsx", "react-jsx").
		Set("module", "esnext").
		Set("moduleResolution", "bundler").
		Set("resolveJsonModule", true).
		Set("allowImportingTsExtensions", true).
		Set("isolatedModules", true).
		Set("noEmit", true).
		Set("strict", true).
		Set("esModuleInterop", true).
		Set("skipLibCheck", true).
		Set("forceConsistentCasingInFileNames", true).
		Set("allowSyntheticDefaultImports", true)

	return tsconfig.NewObject().
		Set("compilerOptions", opts).
		Set("include", strs("src")).
		Set("exclude", strs("node_modules", "dist", "build"))
}

func node() *tsconfig.Object {
	opts := tsconfig.NewObject().
		Set("target", "ES2022").
		Set("module", "commonjs").
		Set("lib", strs("ES2022")).
		Set("outDir", "./dist").
		Set("rootDir", "./src").
		Set("strict", true).
		Set("esModuleInterop", true).
		Set("skipLibCheck", true).
		Set("forceConsistentCasingInFileNames", true).
		Set("resolveJsonModule", true).
		Set("declaration", true).
		Set("sourceMap", true)

	return tsconfig.NewObject().
		Set("compilerOptions", opts).
		Set("include", strs("src/**/*")).
		Set("exclude", strs("node_modules", "dist"))
}

func library() *tsconfig.Object {
	opts := tsconfig.NewObject().
		Set("target", "ES2020").
		Set("module", "esnext").
		Set("lib", strs("ES2020")).
		Set("outDir", "./dist").
		Set("rootDir", "./src").
		Set("declaration", true).
		Set("declarationMap", true).
		Set("sourceMap", true).
		Set("strict", true).
		Set("esModuleInterop", true).
		Set("skipLibCheck", true).
		Set("forceConsistentCasingInFileNames", true).
		Set("moduleResolution", "node").
		Set("resolveJsonModule", true).
		Set("removeComments", false)

	return tsconfig.NewObject().
		Set("compilerOptions", opts).
		Set("include", strs("src/**/*")).
		Set("exclude", strs("node_modules", "dist", "**/*.test.ts", "**/*.spec.ts"))
}

func nextjs() *tsconfig.Object {
	opts := tsconfig.NewObject().
		Set("target", "ES2020").
		Set("lib", strs("ES2020", "DOM", "DOM.Iterable")).
		Set("jsx", "preserve").
		Set("module", "esnext").
		Set("moduleResolution", "bundler").
		Set("resolveJsonModule", true).
		Set("isolatedModules", true).
		Set("incremental", true).
		Set("strict", true).
		Set("esModuleInterop", true).
		Set("skipLibCheck", true).
		Set("forceConsistentCasingInFileNames", true).
		Set("noEmit", true).
		Set("allowJs", true).
		Set("plugins", []any{tsconfig.NewObject().Set("name", "next")}).
		Set("paths", tsconfig.NewObject().Set("@/*", strs("./src/*")))

	return tsconfig.NewObject().
		Set("compilerOptions", opts).
		Set("include", strs("next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts")).
		Set("exclude", strs("node_modules"))
}
