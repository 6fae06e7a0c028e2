package api

// turtleGenerationPrompt instructs the model to convert approved policy text
// into ODRL 2.2 Turtle. Placeholders: current date, policy ID, policy text,
// policy ID again (URI construction).
const turtleGenerationPrompt = `# ODRL POLICY GENERATOR - TURTLE FORMAT

You are an expert at generating W3C ODRL 2.2 compliant policies in Turtle (TTL) format.

**Current Date:** %s

---

## INPUT

You will receive approved policy text. Your task is to convert it into valid ODRL Turtle.

**Policy ID:** %s

**Policy Text:**
` + "```" + `
%s
` + "```" + `

---

## TURTLE STRUCTURE REQUIREMENTS

### 1. PREFIXES (Always include these)
` + "```turtle" + `
@prefix odrl: <http://www.w3.org/ns/odrl/2/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix dct: <http://purl.org/dc/terms/> .
@prefix ex: <http://example.com/> .
` + "```" + `

### 2. POLICY DECLARATION
` + "```turtle" + `
ex:policy_%s a odrl:Policy, odrl:Set ;
    odrl:uid ex:policy_%s ;
    dct:title "Concise Policy Title"@en ;
    dct:description "Clear explanation of what this policy allows/prohibits"@en ;
    odrl:permission [ ... ] ;
    odrl:prohibition [ ... ] .
` + "```" + `

**Policy Types:**
- odrl:Set - General policy collection (most common)
- odrl:Offer - Provider offers terms to recipients
- odrl:Agreement - Binding agreement between parties

### 3. PERMISSION STRUCTURE
` + "```turtle" + `
odrl:permission [
    a odrl:Permission ;
    odrl:action odrl:read ;
    odrl:target ex:dataset_xyz ;
    odrl:assignee ex:party_researcher ;
    odrl:assigner ex:org_provider ;
    odrl:constraint [
        a odrl:Constraint ;
        odrl:leftOperand odrl:dateTime ;
        odrl:operator odrl:lteq ;
        odrl:rightOperand "2025-12-31"^^xsd:date ;
    ] ;
] .
` + "```" + `

### 4. ODRL ACTIONS (Only use standard actions)
odrl:read, odrl:use, odrl:index, odrl:modify, odrl:derive, odrl:reproduce,
odrl:distribute, odrl:share, odrl:sell, odrl:archive, odrl:delete

### 5. ODRL OPERATORS (Only use these)
odrl:eq, odrl:neq, odrl:lt, odrl:gt, odrl:lteq, odrl:gteq,
odrl:isA, odrl:isAnyOf, odrl:isNoneOf, odrl:isAllOf, odrl:isPartOf, odrl:hasPart

### 6. ODRL LEFT OPERANDS (Only use these)
odrl:dateTime, odrl:count, odrl:purpose, odrl:spatial, odrl:recipient,
odrl:elapsedTime, odrl:payAmount, odrl:percentage

### 7. URI CONSTRUCTION RULES
Asset and party URIs are extracted from the policy text, lowercase, spaces
replaced with underscores: ex:dataset_name, ex:party_name.

---

## OUTPUT REQUIREMENTS

1. **Return ONLY valid Turtle syntax**
2. **NO markdown code blocks** (no ` + "```" + `)
3. **NO explanatory text**
4. **Start with @prefix declarations**
5. **Include dct:title and dct:description**
6. **Use proper datatypes** (^^xsd:date, ^^xsd:integer)

Generate the ODRL Turtle policy now:
`

// regenerationPrompt instructs the model to repair a document that failed
// validation. Placeholders: current date, rendered validation report.
const regenerationPrompt = `# ODRL SHACL VIOLATION FIXER

You are an expert at fixing W3C ODRL 2.2 compliance issues in Turtle format.

**Current Date:** %s

---

%s

---

## FIXING GUIDELINES

### 1. PRESERVE POLICY MEANING
- Do NOT change who can do what
- Do NOT change which resources
- Do NOT change time periods, counts, or purposes
- Do NOT remove constraints
- ONLY fix technical compliance issues

### 2. COMMON FIXES

**Missing odrl:uid:**
` + "```turtle" + `
# WRONG
ex:policy_123 a odrl:Policy ;
    odrl:permission [ ... ] .

# CORRECT
ex:policy_123 a odrl:Policy ;
    odrl:uid ex:policy_123 ;
    odrl:permission [ ... ] .
` + "```" + `

**Invalid Operator:**
` + "```turtle" + `
# WRONG
odrl:operator "lte" .

# CORRECT
odrl:operator odrl:lteq .
` + "```" + `

**Invalid leftOperand:**
` + "```turtle" + `
# WRONG
odrl:leftOperand "dateTime" .

# CORRECT
odrl:leftOperand odrl:dateTime .
` + "```" + `

**Missing Constraint Type:**
` + "```turtle" + `
# WRONG
odrl:constraint [
    odrl:leftOperand odrl:dateTime ;
    odrl:operator odrl:lteq ;
    odrl:rightOperand "2025-12-31"^^xsd:date ;
] .

# CORRECT
odrl:constraint [
    a odrl:Constraint ;
    odrl:leftOperand odrl:dateTime ;
    odrl:operator odrl:lteq ;
    odrl:rightOperand "2025-12-31"^^xsd:date ;
] .
` + "```" + `

**Missing Permission/Prohibition Type:**
` + "```turtle" + `
# WRONG
odrl:permission [
    odrl:action odrl:read ;
    odrl:target ex:dataset ;
] .

# CORRECT
odrl:permission [
    a odrl:Permission ;
    odrl:action odrl:read ;
    odrl:target ex:dataset ;
] .
` + "```" + `

**Wrong Datatype:**
` + "```turtle" + `
# WRONG
odrl:rightOperand "2025-12-31" .

# CORRECT
odrl:rightOperand "2025-12-31"^^xsd:date .
` + "```" + `

---

## OUTPUT REQUIREMENTS

1. **Return ONLY the corrected Turtle**
2. **NO markdown code blocks** (no ` + "```" + `)
3. **NO explanatory text**
4. **Start with @prefix declarations**
5. **Preserve all metadata** (dct:title, dct:description, rdfs:comment)
6. **Fix ONLY the specific violations listed above**
7. **Do NOT change the policy meaning**

Return the corrected ODRL Turtle now:
`
