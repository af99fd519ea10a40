package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with cex",
		Content: topicQuickstart,
	},
	{
		Name:    "format",
		Title:   "The CEX Format",
		Summary: "Blocks, labels, comments, and blank lines",
		Content: topicFormat,
	},
	{
		Name:    "tables",
		Title:   "Tabular Blocks",
		Summary: "Headers, rows, datamodels, and column queries",
		Content: topicTables,
	},
	{
		Name:    "relations",
		Title:   "Relation Sets",
		Summary: "The citerelationset block structure",
		Content: topicRelations,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "serve",
		Title:   "HTTP API",
		Summary: "Endpoints exposed by cex serve",
		Content: topicServe,
	},
}

const topicQuickstart = `Quick Start
===========

Every query command takes a document source: a file path, an http(s) URL,
or - for standard input.

1. List the blocks in a document:

    cex labels hmt.cex

2. Print every body stored under a label:

    cex blocks hmt.cex ctscatalog

3. Concatenate a tabular block, one header on top:

    cex table hmt.cex ctscatalog

4. Query the datamodels block:

    cex models hmt.cex
    cex collections hmt.cex urn:cite2:cite:datamodels.v1:imagemodel

5. Extract relation sets:

    cex relations hmt.cex

CLI Commands
------------

  cex info <src>                      Summarize a document
  cex labels <src>                    List labels in discovery order
  cex blocks <src> <label>            Print raw bodies for a label
  cex table <src> <label>             Concatenated rows (--no-header, --rows)
  cex values <src> --column C         Distinct values of column C
             [--key K --value V]      ...only where column K equals V
             [--label L]              ...in blocks labeled L (default datamodels)
  cex models <src>                    Distinct data models
  cex collections <src> <model>       Collections implementing a model
  cex relations <src>                 Relation sets (--no-header)
  cex export <src> <out>              Write a JSON or YAML snapshot
  cex serve <src>                     Serve queries over HTTP
  cex docs [topic]                    Show documentation

Global flags: --config FILE, --verbose, --quiet, --snapshot (treat <src> as a
snapshot written by cex export). Query commands accept --format text|json|yaml.
`

const topicFormat = `The CEX Format
==============

A CEX document is plain text read one line at a time.

  Blank lines          Ignored everywhere.
  // comment           A line whose trimmed form starts with // is ignored.
  #!label              Starts a new block named "label" (surrounding
                       whitespace is trimmed).
  anything else        Belongs to the open block, kept verbatim
                       (indentation and trailing spaces included).

Text before the first #! line belongs to no block and is dropped.

A label may appear more than once. Each occurrence is kept as a separate
body, in document order. A block with no content lines (for example a
marker followed directly by another marker) is dropped entirely, and a
bare "#!" marker with no label discards everything up to the next marker.

Line endings: CRLF and lone CR are treated as LF.

Parsing never fails. Text with no markers simply has no blocks.
`

const topicTables = `Tabular Blocks
==============

Many blocks hold pipe-delimited tables:

    #!datamodels
    Collection|Model|Label|Description
    urn:cite2:hmt:vaimg.v1:|urn:cite2:cite:datamodels.v1:imagemodel|Images|...

The first content line is the header; each following line is a row. Cells
are trimmed of surrounding whitespace. Values are always text.

cex table concatenates every body under a label. With a header, exactly one
header line (from the first body) is printed, then the rows of every body
in order. Headers of later bodies are not compared with the first.

cex values collects the distinct values of a column, sorted. Column names
are matched exactly and are case-sensitive. A body whose header lacks a
requested column contributes nothing (a warning is logged). Rows with too
few cells are skipped.

cex models and cex collections are shortcuts for the datamodels block,
using the column names from the config file (Model and Collection by
default).
`

const topicRelations = `Relation Sets
=============

A citerelationset block has three parts:

    #!citerelationset
    urn|urn:cite2:hmt:va_dse.v1:
    label|DSE records for the Venetus A
    passage|imageroi|surface
    urn:cts:...:1.1|urn:cite2:hmt:vaimg.v1:VA012RN_0013@...|urn:cite2:hmt:msA.v1:12r

  line 1   urn|<value>      The relation set URN.
  line 2   label|<value>    A human-readable label.
  line 3   header           Header of the data section.
  rest     rows             Data rows.

The urn| and label| prefixes are matched case-insensitively. Blocks with
fewer than three content lines, or with a missing prefix, are skipped with
a warning; other relation sets in the document are still returned.

By default the data section includes its header. Pass --no-header (or set
relations.include-header: false in the config) to get only the rows.
`

const topicConfig = `Configuration Reference
=======================

cex reads YAML configuration from, in order: --config FILE, $CEX_CONFIG,
or .cex.yaml in the working directory. Without any of these the defaults
below apply.

  datamodels:
    label: datamodels            Block label read by models/collections.
    model-column: Model          Column naming the data model.
    collection-column: Collection  Column naming the collection.
  relations:
    include-header: true         Keep the data header in relation sets.
  fetch:
    timeout: 30                  Seconds before an HTTP fetch is abandoned.
    user-agent: cex/1            User-Agent header for fetches.
    max-bytes: 52428800          Largest document accepted over HTTP.
  serve:
    addr: ":8090"                Listen address for cex serve.

model-column and collection-column must differ and must not contain |.
`

const topicServe = `HTTP API
========

cex serve <src> loads one document and answers JSON queries about it.

  GET /health                              {"status":"ok"}
  GET /api/document                        id, source, load time, label count
  GET /api/labels                          labels with block counts
  GET /api/blocks/{label}                  raw bodies
  GET /api/tables/{label}?header=false     concatenated rows
                        &view=rows         ...plus parsed header/rows per body
  GET /api/values/{label}?column=C&key=K&value=V
  GET /api/models?column=C
  GET /api/models/{model}/collections
  GET /api/relations?header=false

Errors are returned as {"error": "..."} with a 4xx status.
`
