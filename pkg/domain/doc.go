/*
Package domain contains the core models of the chempath engine.

It defines the compounds that make up the reaction graph, the reactions that
connect them and the outcome of a path search. The package is pure and free
of I/O, following the Hexagonal Architecture used across the module.

# Key Entities

  - FunctionalGroup: the closed set of compound families (Alkane, Alcohol, ...).
  - Compound: an immutable (carbons, group) value identified by its formula.
  - Reaction: one rule application with reagents, conditions and by-products.
  - Path / Outcome: the ordered compounds and reactions found by a search.
  - ValidationError: a rejected query input, naming the side and the minimum.
*/
package domain
