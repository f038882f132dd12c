package logcon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseSource(t *testing.T, src string) *Script {
	t.Helper()
	lang := DetectLanguage(src, NewLanguageRegistry())
	lexer := NewLexer(src, lang)
	tokens := lexer.Tokenize()
	assert.Empty(t, lexer.Errors())
	parser := NewParser(tokens)
	script := parser.ParseScript()
	assert.Empty(t, parser.Errors())
	return script
}

func Test_Parser_EntityWithPropertiesAndEvents(t *testing.T) {
	// Arrange
	src := `entity Counter {
  var count = 0
  const step = 1
  on create {
    count = count + step
  }
  on update(dt) {
    count = count + dt
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	assert.Len(t, script.Entities, 1)
	entity := script.Entities[0]
	assert.Equal(t, "Counter", entity.Name)
	assert.Len(t, entity.Properties, 1)
	assert.Len(t, entity.Constants, 1)
	assert.Len(t, entity.Events, 2)
	assert.Equal(t, "update", entity.Events[1].Name)
	assert.Equal(t, "dt", entity.Events[1].Param)
}

func Test_Parser_ForStatementIsNumericRange(t *testing.T) {
	// Arrange
	src := `entity Looper {
  on create {
    for i = 1 10 {
      print(i)
    }
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	body := script.Entities[0].Events[0].Body
	assert.Len(t, body, 1)
	forStmt, ok := body[0].(*ForStatement)
	assert.True(t, ok)
	assert.Equal(t, "i", forStmt.Variable)
	start, ok := forStmt.Start.(*NumberLiteral)
	assert.True(t, ok)
	assert.Equal(t, 1.0, start.Value)
	end, ok := forStmt.End.(*NumberLiteral)
	assert.True(t, ok)
	assert.Equal(t, 10.0, end.Value)
}

func Test_Parser_GlobalAndLetDeclarations(t *testing.T) {
	// Arrange
	src := `entity Scorer {
  on create {
    global total = 0
    let bonus = 5
    total += bonus
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	body := script.Entities[0].Events[0].Body
	global, ok := body[0].(*VarStatement)
	assert.True(t, ok)
	assert.Equal(t, "global", global.Scope)
	let, ok := body[1].(*VarStatement)
	assert.True(t, ok)
	assert.Equal(t, "let", let.Scope)
	assign, ok := body[2].(*AssignStatement)
	assert.True(t, ok)
	assert.Equal(t, TokenPlusAssign, assign.Op)
}

func Test_Parser_TriggerAndEmitStatements(t *testing.T) {
	// Arrange
	src := `entity Door {
  on create {
    trigger("opened", 1)
    emit("closed")
  }
  on opened(arg) {
    print(arg)
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	body := script.Entities[0].Events[0].Body
	trig, ok := body[0].(*TriggerStatement)
	assert.True(t, ok)
	name, ok := trig.EventName.(*StringLiteral)
	assert.True(t, ok)
	assert.Equal(t, "opened", name.Value)
	assert.Len(t, trig.Args, 1)

	emitStmt, ok := body[1].(*TriggerStatement)
	assert.True(t, ok)
	emitName, ok := emitStmt.EventName.(*StringLiteral)
	assert.True(t, ok)
	assert.Equal(t, "closed", emitName.Value)
}

func Test_Parser_MultiWordFunctionCall(t *testing.T) {
	// Arrange
	src := `entity Robot {
  on create {
    move forward(5)
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	body := script.Entities[0].Events[0].Body
	exprStmt, ok := body[0].(*ExprStatement)
	assert.True(t, ok)
	call, ok := exprStmt.Expr.(*CallExpr)
	assert.True(t, ok)
	callee, ok := call.Callee.(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "move forward", callee.Name)
}

func Test_Parser_IdentifierNotFollowedByParenIsNotAbsorbed(t *testing.T) {
	// Arrange
	src := `entity Stacked {
  on create {
    a
    b
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	body := script.Entities[0].Events[0].Body
	assert.Len(t, body, 2)
	first, ok := body[0].(*ExprStatement)
	assert.True(t, ok)
	ident, ok := first.Expr.(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "a", ident.Name)
}

func Test_Parser_ExpressionPrecedence(t *testing.T) {
	// Arrange
	src := `entity Math {
  on create {
    var result = 1 + 2 * 3
  }
}`

	// Act
	script := parseSource(t, src)

	// Assert
	varStmt := script.Entities[0].Events[0].Body[0].(*VarStatement)
	bin, ok := varStmt.Value.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, TokenPlus, bin.Op)
	right, ok := bin.Right.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, TokenStar, right.Op)
}

func Test_Parser_RecoversFromMalformedStatement(t *testing.T) {
	// Arrange
	src := `entity Broken {
  on create {
    var = = =
    var ok = 1
  }
}`
	lang := DetectLanguage(src, NewLanguageRegistry())
	lexer := NewLexer(src, lang)
	parser := NewParser(lexer.Tokenize())

	// Act
	script := parser.ParseScript()

	// Assert: errors were recorded, but parsing completed without panicking
	// and recovered enough to still see the entity shape.
	assert.NotEmpty(t, parser.Errors())
	assert.Len(t, script.Entities, 1)
}
